package dto

// GenerateReceiptRequest asks the sequencer for the next code of an exam type.
type GenerateReceiptRequest struct {
	PaymentType string `json:"paymentType" binding:"required,max=100"`
}

// ListCountersParams filters counters by two-digit year.
type ListCountersParams struct {
	Year *int `form:"year" binding:"omitempty,gte=0,lte=99"`
}
