package domain

// ShipmentAction names an operation on a shipment for authorization decisions.
type ShipmentAction string

const (
	ActionRegister        ShipmentAction = "register"
	ActionUpdateStatus    ShipmentAction = "updateStatus"
	ActionConfirmDelivery ShipmentAction = "confirmDelivery"
	ActionQuery           ShipmentAction = "query"
)
