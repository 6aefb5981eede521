package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default availability configuration
const (
	DefaultSlotDurationMinutes   = 30
	DefaultMaxReservationsPerDay = 12
	DefaultMaxPerCustomerPerDay  = 2
	DefaultTimezone              = "America/Montevideo"
	DefaultWorkStart             = "09:00"
	DefaultWorkEnd               = "19:00"
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480
	MaxCustomerNameLength  = 120
	MaxReasonLength        = 500
)

// DefaultCancellationReason se registra cuando el cliente no indica motivo
const DefaultCancellationReason = "Sin motivo especificado"
