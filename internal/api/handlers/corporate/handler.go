package corporate

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/anuratyres/ATS-ShopService/internal/api/handlers"
	corporateSvc "github.com/anuratyres/ATS-ShopService/internal/service/corporate"
	"github.com/anuratyres/ATS-ShopService/internal/service/corporate/models"
)

// RegisterCompany POST /api/v1/corporate/companies
func (h *Handler) RegisterCompany(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterCompanyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /corporate/companies - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.RegisterCompany(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, corporateSvc.ErrDuplicateCode):
			h.logger.Warn("POST /corporate/companies - Duplicate code %q", req.CorporateCode)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateCode)

		case errors.Is(err, corporateSvc.ErrInvalidInput):
			h.logger.Warn("POST /corporate/companies - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /corporate/companies - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /corporate/companies - Company %s registered", result.CorporateCode)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// ListCompanies GET /api/v1/corporate/companies?status=&search=
func (h *Handler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListCompaniesRequest{
		Status: query.Get("status"),
		Search: query.Get("search"),
	}

	result, err := h.service.ListCompanies(r.Context(), req)
	if err != nil {
		if errors.Is(err, corporateSvc.ErrInvalidStatus) {
			h.logger.Warn("GET /corporate/companies - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("GET /corporate/companies - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// UpdateCompanyStatus PATCH /api/v1/corporate/companies/{id}/status
func (h *Handler) UpdateCompanyStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req models.UpdateCompanyStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /corporate/companies/%d/status - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateCompanyStatus(r.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, corporateSvc.ErrCompanyNotFound):
			h.logger.Warn("PATCH /corporate/companies/%d/status - Not found", id)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		case errors.Is(err, corporateSvc.ErrInvalidStatus):
			h.logger.Warn("PATCH /corporate/companies/%d/status - Invalid status: %v", id, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /corporate/companies/%d/status - Failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /corporate/companies/%d/status - Set to %s", id, req.Status)
	handlers.RespondJSON(w, http.StatusOK, nil)
}

// RegisterEmployee POST /api/v1/corporate/employees
func (h *Handler) RegisterEmployee(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterEmployeeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /corporate/employees - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.RegisterEmployee(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, corporateSvc.ErrCompanyNotFound):
			h.logger.Warn("POST /corporate/employees - Unknown company %q", req.CorporateCode)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		case errors.Is(err, corporateSvc.ErrInvalidInput):
			h.logger.Warn("POST /corporate/employees - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /corporate/employees - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /corporate/employees - Employee %s registered", result.EmployeeDiscountID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// ListEmployees GET /api/v1/corporate/employees?corporateCode=&status=&search=
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListEmployeesRequest{
		CorporateCode: query.Get("corporateCode"),
		Status:        query.Get("status"),
		Search:        query.Get("search"),
	}

	result, err := h.service.ListEmployees(r.Context(), req)
	if err != nil {
		if errors.Is(err, corporateSvc.ErrInvalidStatus) {
			h.logger.Warn("GET /corporate/employees - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("GET /corporate/employees - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// UpdateEmployeeStatus PATCH /api/v1/corporate/employees/{id}/status
func (h *Handler) UpdateEmployeeStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req models.UpdateEmployeeStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /corporate/employees/%d/status - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateEmployeeStatus(r.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, corporateSvc.ErrEmployeeNotFound):
			h.logger.Warn("PATCH /corporate/employees/%d/status - Not found", id)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, corporateSvc.ErrInvalidStatus):
			h.logger.Warn("PATCH /corporate/employees/%d/status - Invalid status: %v", id, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /corporate/employees/%d/status - Failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /corporate/employees/%d/status - Set to %s", id, req.Status)
	handlers.RespondJSON(w, http.StatusOK, nil)
}

// ValidateDiscount GET /api/v1/corporate/discount/{discountId}
func (h *Handler) ValidateDiscount(w http.ResponseWriter, r *http.Request) {
	discountID := mux.Vars(r)["discountId"]

	result, err := h.service.ValidateDiscount(r.Context(), discountID)
	if err != nil {
		switch {
		case errors.Is(err, corporateSvc.ErrEmployeeNotFound):
			h.logger.Warn("GET /corporate/discount/%s - Not found", discountID)
			handlers.RespondNotFound(w, msgDiscountNotFound)

		case errors.Is(err, corporateSvc.ErrDiscountNotActive):
			h.logger.Warn("GET /corporate/discount/%s - Not active", discountID)
			handlers.RespondError(w, http.StatusConflict, msgDiscountNotActive)

		default:
			h.logger.Error("GET /corporate/discount/%s - Failed: %v", discountID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// RedeemDiscount POST /api/v1/corporate/discount/{discountId}/redeem
func (h *Handler) RedeemDiscount(w http.ResponseWriter, r *http.Request) {
	discountID := mux.Vars(r)["discountId"]

	result, err := h.service.RedeemDiscount(r.Context(), discountID)
	if err != nil {
		switch {
		case errors.Is(err, corporateSvc.ErrEmployeeNotFound):
			h.logger.Warn("POST /corporate/discount/%s/redeem - Not found", discountID)
			handlers.RespondNotFound(w, msgDiscountNotFound)

		case errors.Is(err, corporateSvc.ErrDiscountNotActive):
			h.logger.Warn("POST /corporate/discount/%s/redeem - Not active", discountID)
			handlers.RespondError(w, http.StatusConflict, msgDiscountNotActive)

		default:
			h.logger.Error("POST /corporate/discount/%s/redeem - Failed: %v", discountID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /corporate/discount/%s/redeem - Redeemed", discountID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Complete GET /api/v1/corporate/complete
func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Complete(r.Context())
	if err != nil {
		h.logger.Error("GET /corporate/complete - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Stats GET /api/v1/corporate/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Stats(r.Context())
	if err != nil {
		h.logger.Error("GET /corporate/stats - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// ExportCompaniesCSV GET /api/v1/corporate/export/csv
func (h *Handler) ExportCompaniesCSV(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.ExportCompaniesCSV(r.Context())
	if err != nil {
		h.logger.Error("GET /corporate/export/csv - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	filename := "corporate_data_" + time.Now().UTC().Format("2006-01-02") + ".csv"
	handlers.RespondCSV(w, filename, data)
}

// ExportEmployeesCSV GET /api/v1/corporate/employees/export/csv
func (h *Handler) ExportEmployeesCSV(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.ExportEmployeesCSV(r.Context())
	if err != nil {
		h.logger.Error("GET /corporate/employees/export/csv - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	filename := "employee_data_" + time.Now().UTC().Format("2006-01-02") + ".csv"
	handlers.RespondCSV(w, filename, data)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("corporate - Invalid id %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidID)
		return 0, false
	}
	return id, true
}
