package http

// Request payloads. Deep validation lives in the domain constructors; these
// structs only carry the raw input across the boundary.

type registerRequest struct {
	Username              string `json:"username"`
	Email                 string `json:"email"`
	Password              string `json:"password"`
	Role                  string `json:"role"`
	EstimatedDeliveryTime int    `json:"estimatedDeliveryTime"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	Username              string `json:"username"`
	EstimatedDeliveryTime int    `json:"estimatedDeliveryTime"`
}

type itemRequest struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type customerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type createOrderRequest struct {
	Items        []itemRequest   `json:"items"`
	PrepTime     int             `json:"prepTime"`
	CustomerInfo customerRequest `json:"customerInfo"`
}

type updateOrderRequest struct {
	Items        []itemRequest   `json:"items"`
	PrepTime     int             `json:"prepTime"`
	CustomerInfo customerRequest `json:"customerInfo"`
}

type assignPartnerRequest struct {
	DeliveryPartnerID string `json:"deliveryPartnerId"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type updateAvailabilityRequest struct {
	IsAvailable bool `json:"isAvailable"`
}

type createPartnerRequest struct {
	Username              string `json:"username"`
	Email                 string `json:"email"`
	Password              string `json:"password"`
	EstimatedDeliveryTime int    `json:"estimatedDeliveryTime"`
}

type updatePartnerRequest struct {
	Username              string `json:"username"`
	EstimatedDeliveryTime int    `json:"estimatedDeliveryTime"`
}
