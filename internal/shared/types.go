package shared

// Task types xử lý bởi cmd/worker
const (
	TypeWarmBookMetadata = "catalog:warm_book"
)

// Queue names
const (
	QueueCatalog = "catalog"
	QueueDefault = "default"
)

// WarmBookPayload is the payload of TypeWarmBookMetadata
type WarmBookPayload struct {
	BookID string `json:"book_id"`
}
