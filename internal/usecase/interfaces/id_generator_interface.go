package interfaces

// IIDGenerator hands out numeric identifiers for invoices and cost entries.
type IIDGenerator interface {
	NextID() int64
}
