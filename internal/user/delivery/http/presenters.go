package http

import (
	"time"

	"chat-commerce/internal/model"
	"chat-commerce/internal/user"
)

// --- Request DTOs ---

type signupReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r signupReq) toInput() user.SignupInput {
	return user.SignupInput{Name: r.Name, Email: r.Email, Password: r.Password}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{Email: r.Email, Password: r.Password}
}

type refreshReq struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// updateProfileReq uses pointers so an absent field is left unchanged.
type updateProfileReq struct {
	Name      *string                  `json:"name"`
	Phone     *string                  `json:"phone"`
	Addresses *[]model.ShippingAddress `json:"addresses"`
}

func (r updateProfileReq) toInput() user.UpdateProfileInput {
	return user.UpdateProfileInput{Name: r.Name, Phone: r.Phone, Addresses: r.Addresses}
}

// --- Response DTOs ---

type userResp struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name"`
	Email     string                  `json:"email"`
	Role      string                  `json:"role"`
	Phone     string                  `json:"phone"`
	Addresses []model.ShippingAddress `json:"addresses"`
	CreatedAt time.Time               `json:"createdAt"`
}

func newUserResp(u user.User) userResp {
	addrs := u.Addresses
	if addrs == nil {
		addrs = []model.ShippingAddress{}
	}
	return userResp{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Phone:     u.Phone,
		Addresses: addrs,
		CreatedAt: u.CreatedAt,
	}
}

type tokensResp struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type authResp struct {
	User         userResp `json:"user"`
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
}

func newAuthResp(out user.AuthOutput) authResp {
	return authResp{
		User:         newUserResp(out.User),
		AccessToken:  out.Tokens.AccessToken,
		RefreshToken: out.Tokens.RefreshToken,
	}
}
