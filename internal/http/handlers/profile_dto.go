package handlers

import "truckhub/internal/domain"

type ownerDTO struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
	Location   string  `json:"location"`
	Status     string  `json:"status"`
	Experience int     `json:"experience"`
	Rating     float64 `json:"rating"`
}

type updateOwnerRequest struct {
	Name       *string `json:"name,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`
	Location   *string `json:"location,omitempty"`
	Experience *int    `json:"experience,omitempty"`
}

func (r updateOwnerRequest) toModel(id int64) domain.PartialOwnerUpdate {
	return domain.PartialOwnerUpdate{
		ID:         id,
		Name:       r.Name,
		Phone:      r.Phone,
		Email:      r.Email,
		Location:   r.Location,
		Experience: r.Experience,
	}
}

func ownerToResponse(o *domain.TruckOwner) ownerDTO {
	return ownerDTO{
		ID:         o.ID,
		Name:       o.Name,
		Phone:      o.Phone,
		Email:      o.Email,
		Location:   o.Location,
		Status:     o.Status,
		Experience: o.Experience,
		Rating:     o.Rating,
	}
}
