package models

import (
	"time"
)

type DeliveryOption string

const (
	Pickup   DeliveryOption = "Pickup"
	Delivery DeliveryOption = "Delivery"
)

func (d DeliveryOption) IsValid() bool {
	return d == Pickup || d == Delivery
}

type Order struct {
	ID                      string         `json:"id"`
	CustomerName            string         `json:"customerName"`
	CustomerContact         string         `json:"customerContact"`
	Items                   []LineItem     `json:"items"`
	AssignedGroup           GroupName      `json:"assignedGroup"`
	OrderDate               time.Time      `json:"orderDate"`
	IsFulfilled             bool           `json:"isFulfilled"`
	TotalPrice              float64        `json:"totalPrice"`
	DonationAmount          float64        `json:"donationAmount"`
	DeliveryOption          DeliveryOption `json:"deliveryOption"`
	DeliveryAddress         string         `json:"deliveryAddress,omitempty"`
	OrderNumber             string         `json:"orderNumber"`
	ZelleConfirmationNumber string         `json:"zelleConfirmationNumber"`
	IsRecurring             bool           `json:"isRecurring"`
}

// OrderPatch carries the admin-editable fields of an order. Nil fields are left untouched.
// ID, OrderDate and TotalPrice are not patchable.
type OrderPatch struct {
	CustomerName            *string         `json:"customerName"`
	CustomerContact         *string         `json:"customerContact"`
	Items                   *[]LineItem     `json:"items"`
	AssignedGroup           *GroupName      `json:"assignedGroup"`
	IsFulfilled             *bool           `json:"isFulfilled"`
	DonationAmount          *float64        `json:"donationAmount"`
	DeliveryOption          *DeliveryOption `json:"deliveryOption"`
	DeliveryAddress         *string         `json:"deliveryAddress"`
	OrderNumber             *string         `json:"orderNumber"`
	ZelleConfirmationNumber *string         `json:"zelleConfirmationNumber"`
	IsRecurring             *bool           `json:"isRecurring"`
}

// Apply merges the patch into o.
func (p OrderPatch) Apply(o *Order) {
	if p.CustomerName != nil {
		o.CustomerName = *p.CustomerName
	}
	if p.CustomerContact != nil {
		o.CustomerContact = *p.CustomerContact
	}
	if p.Items != nil {
		items := make([]LineItem, 0, len(*p.Items))
		for _, item := range *p.Items {
			// quantity <= 0 means the row was removed in the edit form
			if item.Quantity > 0 {
				items = append(items, item)
			}
		}
		o.Items = items
	}
	if p.AssignedGroup != nil {
		o.AssignedGroup = *p.AssignedGroup
	}
	if p.IsFulfilled != nil {
		o.IsFulfilled = *p.IsFulfilled
	}
	if p.DonationAmount != nil {
		o.DonationAmount = *p.DonationAmount
	}
	if p.DeliveryOption != nil {
		o.DeliveryOption = *p.DeliveryOption
	}
	if p.DeliveryAddress != nil {
		o.DeliveryAddress = *p.DeliveryAddress
	}
	if p.OrderNumber != nil {
		o.OrderNumber = *p.OrderNumber
	}
	if p.ZelleConfirmationNumber != nil {
		o.ZelleConfirmationNumber = *p.ZelleConfirmationNumber
	}
	if p.IsRecurring != nil {
		o.IsRecurring = *p.IsRecurring
	}
	// only delivery orders carry an address
	if o.DeliveryOption != Delivery {
		o.DeliveryAddress = ""
	}
}
