package controllers

var (
	ErrInvalidCredentials = &CustomError{"invalid passphrase"}
	ErrProductNotFound    = &CustomError{"product not found"}
	ErrOrderNotFound      = &CustomError{"order not found"}
	ErrInvalidSize        = &CustomError{"unknown size"}
	ErrInvalidGroup       = &CustomError{"unknown group"}
	ErrInvalidDelivery    = &CustomError{"delivery option must be Pickup or Delivery"}
	ErrAddressRequired    = &CustomError{"delivery address is required for delivery orders"}
	ErrNegativeDonation   = &CustomError{"donation amount cannot be negative"}
	ErrEmptyCart          = &CustomError{"cart is empty"}
)

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}
