package redirect

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mumbies/platform/pkg/utils"
)

type Service interface {
	RedirectURL(referralCode string) (string, error)
}

type RedirectHandler struct {
	referralService Service
}

func New(referralService Service) *RedirectHandler {
	return &RedirectHandler{
		referralService: referralService,
	}
}

// RefRedirect godoc
//
//	@Summary		Redirect a referral link visit to the storefront
//	@Description	Mints a timestamped, signed fingerprint for the referral code and 302-redirects to the storefront with ts/mrc/sg query parameters.
//	@Tags			Redirects
//	@Produce		json
//	@Param			code	path		string	true	"Referral code"
//	@Success		302		{string}	string	"Redirect to storefront"
//	@Failure		500		{object}	utils.Response	"Configuration error"
//	@Router			/redirects/ref-redirect/{code} [get]
func (h *RedirectHandler) RefRedirect(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	url, err := h.referralService.RedirectURL(code)
	if err != nil {
		// never redirect to a half-built URL
		utils.RespondWithError(w, http.StatusInternalServerError, "Server configuration error")
		return
	}
	http.Redirect(w, r, url, http.StatusFound)
}
