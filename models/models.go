package models

import (
	"fmt"
	"strconv"
)

// Shipment is one physical package queued for batch submission.
type Shipment struct {
	ID        string
	Length    int64 // inches, rounded up at form acceptance
	Width     int64
	Height    int64
	Weight    float64 // pounds, kept exact
	Reference string
}

// Dims renders the dimensions the way they appear on screens and labels.
func (s Shipment) Dims() string {
	return fmt.Sprintf("%d x %d x %d in", s.Length, s.Width, s.Height)
}

// WeightLabel renders the weight without trailing zeros.
func (s Shipment) WeightLabel() string {
	return strconv.FormatFloat(s.Weight, 'f', -1, 64) + " lb"
}
