package handlers

import "truckhub/internal/domain"

type driverDTO struct {
	ID        int64               `json:"id"`
	Name      string              `json:"name"`
	Phone     string              `json:"phone"`
	LicenseNo string              `json:"license_no"`
	Status    domain.DriverStatus `json:"status"`
}

type createDriverRequest struct {
	Name      string              `json:"name"`
	Phone     string              `json:"phone"`
	LicenseNo string              `json:"license_no"`
	Status    domain.DriverStatus `json:"status"`
}

type updateDriverRequest struct {
	Name      *string              `json:"name,omitempty"`
	Phone     *string              `json:"phone,omitempty"`
	LicenseNo *string              `json:"license_no,omitempty"`
	Status    *domain.DriverStatus `json:"status,omitempty"`
}

func (r createDriverRequest) toModel() *domain.Driver {
	return &domain.Driver{
		Name:      r.Name,
		Phone:     r.Phone,
		LicenseNo: r.LicenseNo,
		Status:    r.Status,
	}
}

func (r updateDriverRequest) toModel(id int64) domain.PartialDriverUpdate {
	return domain.PartialDriverUpdate{
		ID:        id,
		Name:      r.Name,
		Phone:     r.Phone,
		LicenseNo: r.LicenseNo,
		Status:    r.Status,
	}
}

func driverToResponse(d domain.Driver) driverDTO {
	return driverDTO{
		ID:        d.ID,
		Name:      d.Name,
		Phone:     d.Phone,
		LicenseNo: d.LicenseNo,
		Status:    d.Status,
	}
}

func driversToResponse(list []domain.Driver) []driverDTO {
	out := make([]driverDTO, 0, len(list))
	for _, d := range list {
		out = append(out, driverToResponse(d))
	}
	return out
}
