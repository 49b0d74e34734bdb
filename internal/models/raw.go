package models

// Raw platform API shapes, decoded as-is before normalization. The platform
// keys records by "_id" and reports vehicle types in display vocabulary
// ("Car", "Mini Bus", ...), status as an enumeration string, and the base
// rate nested under rentalPlan.

type RawRentalPlan struct {
	BasePrice float64 `json:"basePrice"`
}

type RawVehicle struct {
	ID           string        `json:"_id"`
	Name         string        `json:"name"`
	Brand        string        `json:"brand"`
	Model        string        `json:"model"`
	VehicleType  string        `json:"vehicleType"`
	Location     string        `json:"location"`
	Seats        int           `json:"seats"`
	Transmission string        `json:"transmission"`
	FuelType     string        `json:"fuelType"`
	Features     []string      `json:"features"`
	Image        string        `json:"image"`
	Status       string        `json:"status"`
	RentalPlan   RawRentalPlan `json:"rentalPlan"`
}

type RawUser struct {
	ID      string       `json:"_id"`
	Name    string       `json:"name"`
	Email   string       `json:"email"`
	City    string       `json:"city"`
	Role    string       `json:"role"`
	Status  string       `json:"status"`
	CNIC    string       `json:"cnic"`
	Gender  string       `json:"gender"`
	Profile *UserProfile `json:"profile"`
}

// Normalize maps the platform account record into the front-end shape.
func (r RawUser) Normalize() User {
	return User{
		ID:      r.ID,
		Name:    r.Name,
		Email:   r.Email,
		City:    r.City,
		Role:    UserRole(r.Role),
		Status:  UserStatus(r.Status),
		CNIC:    r.CNIC,
		Gender:  r.Gender,
		Profile: r.Profile,
	}
}

type RawBooking struct {
	ID             string     `json:"_id"`
	Vehicle        RawVehicle `json:"vehicle"`
	StartDate      string     `json:"startDate"`
	EndDate        string     `json:"endDate"`
	PickupLocation string     `json:"pickupLocation"`
	DropLocation   string     `json:"dropLocation"`
	IncludeDriver  bool       `json:"includeDriver"`
	Price          float64    `json:"price"`
	Status         string     `json:"status"`
	PaymentStatus  string     `json:"paymentStatus"`
	CreatedAt      string     `json:"createdAt"`
	UpdatedAt      string     `json:"updatedAt"`
}
