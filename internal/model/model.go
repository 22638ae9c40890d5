// Package model holds the rows read from and written to PostgreSQL and the
// request payloads accepted by the HTTP handlers.
//
// Row structs carry both json and db tags: db tags drive
// pgx.RowToStructByName in the repositories, json tags are the wire format.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// User roles.
const (
	RoleClient = "client"
	RoleVendor = "vendor"
)

// Booking status labels of the booking_status enum.
const (
	BookingInProgress = "in progress"
	BookingConfirmed  = "confirmed"
	BookingCompleted  = "completed"
)

type User struct {
	ID            int64   `json:"id" db:"id"`
	Email         string  `json:"email" db:"email"`
	FullName      string  `json:"full_name" db:"full_name"`
	ContactNumber *string `json:"contact_number" db:"contact_number"`
	Address       *string `json:"address" db:"address"`
	Password      string  `json:"password" db:"password"`
	Role          *string `json:"role" db:"role"`
}

type Service struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	UserID      int64      `json:"user_id" db:"user_id"`
	CreatedAt   *time.Time `json:"created_at" db:"created_at"`
}

// ServiceWithSubcategories is a service listing entry.
// Subcategories is never nil so it encodes as [] when empty.
type ServiceWithSubcategories struct {
	Service
	Subcategories []Subcategory `json:"subcategories"`
}

type Subcategory struct {
	ID               int64           `json:"id" db:"id"`
	ServiceID        *int64          `json:"service_id" db:"service_id"`
	Name             string          `json:"name" db:"name"`
	Price            decimal.Decimal `json:"price" db:"price"`
	ShortDescription string          `json:"short_description" db:"short_description"`
	FileURL          *string         `json:"file_url" db:"file_url"`
}

// Appointment dates and times are read as text (YYYY-MM-DD, HH:MM:SS).
type Appointment struct {
	ID             int64      `json:"id" db:"id"`
	Date           string     `json:"date" db:"date"`
	Time           string     `json:"time" db:"time"`
	AdditionalInfo *string    `json:"additional_info" db:"additional_info"`
	ClientID       int64      `json:"client_id" db:"client_id"`
	VendorID       int64      `json:"vendor_id" db:"vendor_id"`
	Status         *bool      `json:"status" db:"status"`
	CreatedAt      *time.Time `json:"created_at" db:"created_at"`
}

// Booking references are nullable columns; user_id is set to NULL when the
// booking user is deleted.
type Booking struct {
	ID        int64      `json:"id" db:"id"`
	UserID    *int64     `json:"user_id" db:"user_id"`
	ServiceID *int64     `json:"service_id" db:"service_id"`
	SubID     *int64     `json:"sub_id" db:"sub_id"`
	Status    *string    `json:"status" db:"status"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// BookingDetails is a client booking with its related rows.
// A missing related row encodes as null.
type BookingDetails struct {
	Booking
	Service     *Service     `json:"service"`
	Subcategory *Subcategory `json:"subcategory"`
	Payment     *Payment     `json:"payment"`
}

// VendorService is one of a vendor's services with the bookings made on it.
type VendorService struct {
	Service
	Bookings []VendorBooking `json:"bookings"`
}

// VendorBooking is a booking as seen by the vendor: the booked subcategory and
// the client who booked.
type VendorBooking struct {
	Booking
	Subcategory *Subcategory `json:"subcategory"`
	User        *User        `json:"user"`
}

type Payment struct {
	ID              int64           `json:"id" db:"id"`
	BookingID       *int64          `json:"booking_id" db:"booking_id"`
	Deposit         decimal.Decimal `json:"deposit" db:"deposit"`
	ReferenceNumber string          `json:"reference_number" db:"reference_number"`
	CreatedAt       *time.Time      `json:"created_at" db:"created_at"`
}

type WeddingPlan struct {
	ID             int64               `json:"id" db:"id"`
	Budget         decimal.NullDecimal `json:"budget" db:"budget"`
	Venue          *bool               `json:"venue" db:"venue"`
	Decor          *bool               `json:"decor" db:"decor"`
	Catering       *bool               `json:"catering" db:"catering"`
	Entertainment  *bool               `json:"entertainment" db:"entertainment"`
	Photographer   *bool               `json:"photographer" db:"photographer"`
	WeddingCake    *bool               `json:"wedding_cake" db:"wedding_cake"`
	Transportation *bool               `json:"transportation" db:"transportation"`
	UserID         *int64              `json:"user_id" db:"user_id"`
	CreatedAt      *time.Time          `json:"created_at" db:"created_at"`
}

// Message is the body of responses that only carry a confirmation.
type Message struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	Message string `json:"message"`
	User    *User  `json:"user"`
}

type BookingCreated struct {
	Message string   `json:"message"`
	Booking *Booking `json:"booking"`
}

type WeddingPlanCreated struct {
	Message string       `json:"message"`
	Plan    *WeddingPlan `json:"plan"`
}

type ServiceCreated struct {
	Message   string `json:"message"`
	ServiceID int64  `json:"serviceId"`
}
