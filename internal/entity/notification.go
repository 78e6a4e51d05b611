package entity

// Delivery is the outcome of pushing the digest to one recipient.
type Delivery struct {
	Recipient  string
	StatusCode int
	Body       string
	Err        error
}

func (d Delivery) OK() bool {
	return d.Err == nil
}
