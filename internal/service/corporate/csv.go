package corporate

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/anuratyres/ATS-ShopService/internal/domain"
)

// ExportCompaniesCSV renders every company as a CSV document for download.
func (s *Service) ExportCompaniesCSV(ctx context.Context) ([]byte, error) {
	companies, err := s.corporateRepo.ListCompanies(ctx, domain.CompanyFilter{})
	if err != nil {
		s.logger.Error("ExportCompaniesCSV: repository error: %v", err)
		return nil, fmt.Errorf("%w: ExportCompaniesCSV - repository error: %v", ErrInternal, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"Company Name", "Contact Person", "Email", "Phone", "Business Type",
		"Corporate Code", "Discount (%)", "Status", "Registered Date", "Booking Count",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("%w: ExportCompaniesCSV - write header: %v", ErrInternal, err)
	}

	for _, c := range companies {
		record := []string{
			c.CompanyName,
			c.ContactPerson,
			c.Email,
			c.Phone,
			c.BusinessType,
			c.CorporateCode,
			strconv.Itoa(c.Discount),
			string(c.Status),
			c.RegisteredDate.Format(domain.DateFormat),
			strconv.Itoa(c.BookingCount),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("%w: ExportCompaniesCSV - write record: %v", ErrInternal, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: ExportCompaniesCSV - flush: %v", ErrInternal, err)
	}

	s.logger.Info("ExportCompaniesCSV: exported %d companies", len(companies))
	return buf.Bytes(), nil
}

// ExportEmployeesCSV renders every employee as a CSV document for download.
func (s *Service) ExportEmployeesCSV(ctx context.Context) ([]byte, error) {
	employees, err := s.corporateRepo.ListEmployees(ctx, domain.EmployeeFilter{})
	if err != nil {
		s.logger.Error("ExportEmployeesCSV: repository error: %v", err)
		return nil, fmt.Errorf("%w: ExportEmployeesCSV - repository error: %v", ErrInternal, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"Employee Name", "Email", "Phone", "Company Name", "Corporate Code",
		"Department", "Vehicle No", "Discount ID", "Discount (%)", "Status",
		"Registered Date", "Usage Count",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("%w: ExportEmployeesCSV - write header: %v", ErrInternal, err)
	}

	for _, e := range employees {
		record := []string{
			e.EmployeeName,
			e.EmployeeEmail,
			e.EmployeePhone,
			e.CompanyName,
			e.CorporateCode,
			e.Department,
			e.VehicleNo,
			e.EmployeeDiscountID,
			strconv.Itoa(e.Discount),
			string(e.Status),
			e.RegisteredDate.Format(domain.DateFormat),
			strconv.Itoa(e.UsageCount),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("%w: ExportEmployeesCSV - write record: %v", ErrInternal, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: ExportEmployeesCSV - flush: %v", ErrInternal, err)
	}

	s.logger.Info("ExportEmployeesCSV: exported %d employees", len(employees))
	return buf.Bytes(), nil
}
