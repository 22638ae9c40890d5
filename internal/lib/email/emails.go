package email

import (
	"context"
	"strconv"
)

func (c *Client) SendWelcomeEmail(ctx context.Context, to, fullName string) error {
	return c.SendEmail(ctx, to, "Welcome to Wedding Planner!", TemplateWelcome, map[string]string{
		"FullName": fullName,
	})
}

// SendBookingReceivedEmail tells a vendor that one of their services was
// booked.
func (c *Client) SendBookingReceivedEmail(ctx context.Context, to, vendorName, serviceTitle, subcategoryName string, bookingID int64) error {
	return c.SendEmail(ctx, to, "New booking for "+serviceTitle, TemplateBookingReceived, map[string]string{
		"VendorName":      vendorName,
		"ServiceTitle":    serviceTitle,
		"SubcategoryName": subcategoryName,
		"BookingID":       strconv.FormatInt(bookingID, 10),
	})
}
