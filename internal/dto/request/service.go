package request

type CreateServiceRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	Description string   `json:"description" validate:"required,max=2000"`
	Category    string   `json:"category" validate:"required,oneof=HAIR_STYLING MANICURE PEDICURE MAKEUP SKINCARE EYEBROWS MASSAGE"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Duration    int      `json:"duration" validate:"required,gt=0"` // minutes
	Images      []string `json:"images,omitempty"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,oneof=HAIR_STYLING MANICURE PEDICURE MAKEUP SKINCARE EYEBROWS MASSAGE"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Duration    *int     `json:"duration,omitempty" validate:"omitempty,gt=0"`
	Images      []string `json:"images,omitempty"`
	IsActive    *bool    `json:"isActive,omitempty"`
}
