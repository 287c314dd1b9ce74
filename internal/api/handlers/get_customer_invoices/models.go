package get_customer_invoices

import (
	"time"

	"github.com/lotusspa/SPA-OrderService/internal/domain"
	"github.com/lotusspa/SPA-OrderService/internal/service/invoices/models"
)

// ToServiceRequest builds the service request from path and query params.
// startDate/endDate use YYYY-MM-DD; endDate is made inclusive by moving it
// to the end of the day.
func ToServiceRequest(customerID int64, query map[string]string) (*models.GetCustomerInvoicesRequest, error) {
	req := &models.GetCustomerInvoicesRequest{CustomerID: customerID}

	if s, ok := query["status"]; ok && s != "" {
		status := s
		req.Status = &status
	}

	if s, ok := query["startDate"]; ok && s != "" {
		startDate, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if s, ok := query["endDate"]; ok && s != "" {
		endDate, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			return nil, err
		}
		endOfDay := endDate.Add(24*time.Hour - time.Nanosecond)
		req.EndDate = &endOfDay
	}

	if s, ok := query["includeVoided"]; ok {
		req.IncludeVoided = s == "true"
	}

	return req, nil
}
