package dto

type RequestOTPRequestDTO struct {
	Email string `json:"email" validate:"required,email" example:"buyer@example.com"`
}

type RequestOTPResponseDTO struct {
	Message string `json:"message"`
}

type VerifyOTPRequestDTO struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6" example:"493027"`
}

type VerifyOTPResponseDTO struct {
	Token string `json:"token"`
}

type MeResponseDTO struct {
	ID                    int    `json:"id"`
	Email                 string `json:"email"`
	Role                  string `json:"role" example:"PARTNER"`
	ReferralCode          string `json:"referralCode" example:"MUMB12AB34CD"`
	TotalReferralEarnings string `json:"totalReferralEarnings" example:"120.50"`
	WithdrawableBalance   string `json:"withdrawableBalance" example:"80.00"`
	TotalReferredUsers    int    `json:"totalReferredUsers"`
}
