package todaypickup

// Wire types for the TodayPickup admin API. Field names follow the
// upstream contract exactly (camelCase); optional fields are omitted
// from the request body when empty. The binding tags drive inbound
// validation before a request is ever forwarded.

// AuthContext carries the two header values agency operations require.
// It is not validated here beyond non-emptiness; the upstream API owns
// the actual auth decision.
type AuthContext struct {
	AgencyID string
	Token    string
}

// Headers renders the auth context as the upstream's header pair.
func (a AuthContext) Headers() map[string]string {
	return map[string]string{
		"Authorization": a.Token,
		"agencyId":      a.AgencyID,
	}
}

// Valid reports whether both header values are present.
func (a AuthContext) Valid() bool {
	return a.AgencyID != "" && a.Token != ""
}

// AgencyCredentials is the request body for token issuance.
type AgencyCredentials struct {
	AccessKey string `json:"accessKey,omitempty"`
	Nonce     string `json:"nonce,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// DeliveryAssignment updates a delivery's external order id, consignee
// info, or status once an agency accepts the assignment.
type DeliveryAssignment struct {
	ExtOrderID    string `json:"extOrderId,omitempty"`
	InvoiceNumber string `json:"invoiceNumber" binding:"required"`
	Status        string `json:"status,omitempty"`
}

// InvoiceRef identifies a single delivery by invoice number.
type InvoiceRef struct {
	InvoiceNumber string `json:"invoiceNumber" binding:"required"`
}

// FlexTransferList names the deliveries to hand over to Flex in bulk.
type FlexTransferList struct {
	InvoiceNumberList []string `json:"invoiceNumberList" binding:"required,min=1"`
}

// DeliveryStateUpdate changes the state of a delivery in flight.
type DeliveryStateUpdate struct {
	HoldCode      string `json:"holdCode,omitempty"`
	ImgURL        string `json:"imgUrl,omitempty"`
	InvoiceNumber string `json:"invoiceNumber" binding:"required"`
	Status        string `json:"status" binding:"required"`
}

// PostalCode describes one deliverable (or not) postal area.
type PostalCode struct {
	BuildingCode  string `json:"buildingCode,omitempty"`
	BuildingName  string `json:"buildingName,omitempty"`
	LegalDongCode string `json:"legalDongCode,omitempty"`
	RoadCode      string `json:"roadCode,omitempty"`
	RoadName      string `json:"roadName,omitempty"`
	PostNumber    string `json:"postNumber" binding:"required"`
	Sido          string `json:"sido" binding:"required"`
	Gugun         string `json:"gugun" binding:"required"`
	PossibleArea  string `json:"possibleArea" binding:"required,oneof=Y N"`
	DeliveryGroup string `json:"deliveryGroup,omitempty"`
	AdminDong     string `json:"adminDong,omitempty"`
	LegalDong     string `json:"legalDong,omitempty"`
}

// PostalCodeList is the request body for registering deliverable areas.
type PostalCodeList struct {
	DawnDelivery       string       `json:"dawnDelivery,omitempty" binding:"omitempty,oneof=Y N"`
	PostNumberSaveList []PostalCode `json:"postNumberSaveList" binding:"required,min=1,dive"`
}

// Goods describes one shipment for registration (delivery or return).
// InvoiceNumber is only supplied when the mall generates its own
// invoice numbers, in which case the upstream requires 12 digits.
type Goods struct {
	ChildrenMallID     string `json:"childrenMallId,omitempty"`
	DeliveryAddress    string `json:"deliveryAddress" binding:"required"`
	DeliveryAddressEng string `json:"deliveryAddressEng,omitempty"`
	DeliveryMessage    string `json:"deliveryMessage,omitempty"`
	DeliveryName       string `json:"deliveryName" binding:"required"`
	DeliveryPhone      string `json:"deliveryPhone" binding:"required"`
	DeliveryPostal     string `json:"deliveryPostal,omitempty"`
	DeliveryTel        string `json:"deliveryTel,omitempty"`
	GoodsName          string `json:"goodsName,omitempty"`
	InvoiceNumber      string `json:"invoiceNumber,omitempty" binding:"omitempty,len=12,numeric"`
	InvoicePrintYn     string `json:"invoicePrintYn,omitempty" binding:"omitempty,oneof=Y N"`
	MallName           string `json:"mallName" binding:"required"`
	OptionName         string `json:"optionName,omitempty"`
	OrderNumber        string `json:"orderNumber,omitempty"`
	Quantity           int    `json:"quantity,omitempty"`
	ReserveDt          string `json:"reserveDt,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// DeliveryGoods is a single delivery registration, which additionally
// carries the dawn-delivery flag.
type DeliveryGoods struct {
	Goods
	DawnDelivery string `json:"dawnDelivery,omitempty" binding:"omitempty,oneof=Y N"`
}

// DeliveryRegistration registers up to 100 deliveries in one call.
type DeliveryRegistration struct {
	DawnDelivery string  `json:"dawnDelivery,omitempty" binding:"omitempty,oneof=Y N"`
	GoodsList    []Goods `json:"goodsList" binding:"required,min=1,max=100,dive"`
}

// ReturnRegistration registers up to 100 return pickups in one call.
type ReturnRegistration struct {
	GoodsList []Goods `json:"goodsList" binding:"required,min=1,max=100,dive"`
}

// PossibleDeliveryQuery is the query string for the deliverability check.
type PossibleDeliveryQuery struct {
	Address      string `form:"address" binding:"required"`
	PostalCode   string `form:"postalCode"`
	DawnDelivery string `form:"dawnDelivery" binding:"omitempty,oneof=Y N"`
}
