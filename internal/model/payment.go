package model

import "time"

// PaymentRequestInput represents request for POST /globete-api/payment-request
type PaymentRequestInput struct {
	Address string `json:"address"`
	Amount  string `json:"amount,omitempty"` // COP, optional
	Token   string `json:"token,omitempty"`
	Note    string `json:"note,omitempty"`
}

// PaymentRequestResponse carries the shareable payment URI and its QR code
type PaymentRequestResponse struct {
	RequestID string    `json:"requestId"`
	URI       string    `json:"uri"`
	QRPng     string    `json:"qrPng"` // base64 PNG
	CreatedAt time.Time `json:"createdAt"`
}
