package orderdto

type PlaceOrderInput struct {
	ServiceID  string
	AuthorID   string
	CustomerID string
	Message    string
}
