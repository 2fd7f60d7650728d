package models

// Chat_Request is the payload of the primary chat endpoint. The inventory
// snapshot is request-scoped: concurrent requests never observe each
// other's stock data.
type Chat_Request struct {
	Message      string            `json:"message"`
	Inventory    []Inventory_Item  `json:"inventory"`
	Chat_History []History_Message `json:"chat_history"`
}

// History_Message is one prior exchange supplied by the caller. Only the
// user-visible text survives between requests; tool traffic is not
// replayed.
type History_Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chat_Response is the reply of the chat endpoint.
type Chat_Response struct {
	Response string `json:"response"`
}

// Inventory_Item is one row of the stock snapshot.
type Inventory_Item struct {
	Product_Name   string  `json:"product_name"`
	Price          float64 `json:"price"`
	Stock_Quantity int     `json:"stock_quantity"`
}
