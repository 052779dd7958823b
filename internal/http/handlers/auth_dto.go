package handlers

import (
	"truckhub/internal/service/accounts"
)

type loginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	UserID    int64  `json:"user_id"`
	Role      string `json:"role"`
	ProfileID int64  `json:"profile_id"`
}

type registerOwnerRequest struct {
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	Location   string `json:"location"`
	Experience int    `json:"experience"`
}

type registerManufacturerRequest struct {
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	CompanyName  string `json:"company_name"`
	BusinessType string `json:"business_type"`
}

type idResponse struct {
	ID int64 `json:"id"`
}

func (r registerOwnerRequest) toInput() accounts.ProvisionOwnerInput {
	return accounts.ProvisionOwnerInput{
		Phone:      r.Phone,
		Email:      r.Email,
		Password:   r.Password,
		Name:       r.Name,
		Location:   r.Location,
		Experience: r.Experience,
	}
}

func (r registerManufacturerRequest) toInput() accounts.ProvisionManufacturerInput {
	return accounts.ProvisionManufacturerInput{
		Phone:        r.Phone,
		Email:        r.Email,
		Password:     r.Password,
		CompanyName:  r.CompanyName,
		BusinessType: r.BusinessType,
	}
}

func loginResultToResponse(res *accounts.LoginResult) loginResponse {
	return loginResponse{
		Token:     res.Token,
		UserID:    res.UserID,
		Role:      string(res.Role),
		ProfileID: res.ProfileID,
	}
}
