package model

// Session carries the terminal state the gate needs.
type Session struct {
	TerminalID     string          `json:"terminalID"`
	PaymentMethods []PaymentMethod `json:"paymentMethods"`
}
