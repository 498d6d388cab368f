package credits

import (
	"context"
	"net/http"

	"github.com/andredsp/taxgate/internal/domain"
	"github.com/andredsp/taxgate/internal/dto"
	"github.com/andredsp/taxgate/pkg/auth"
	"github.com/andredsp/taxgate/pkg/utils"
)

//go:generate mockgen -source=credits.go -destination=mock.go -package=credits

type Service interface {
	GetCapability(ctx context.Context, userID int) (*domain.Capability, error)
	GetActiveUserPacks(ctx context.Context, userID int) ([]domain.UserPack, error)
	TotalRemaining(ctx context.Context, userID int) (int, error)
}

type CreditHandler struct {
	creditService Service
}

func New(creditService Service) *CreditHandler {
	return &CreditHandler{
		creditService: creditService,
	}
}

// GetCapability godoc
//
//	@Summary		Get submission capability
//	@Description	Report whether the user can create a submission and at which tiers. A stale answer is possible; the credit debit itself is what guarantees the ledger.
//	@Tags			Credits
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CapabilityResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/capability [get]
func (h *CreditHandler) GetCapability(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	capability, err := h.creditService.GetCapability(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CapabilityResponseDTO{
		CanCreate:       capability.CanCreate,
		HasPremium:      capability.HasPremium,
		HasStandardOnly: capability.HasStandardOnly,
		HasOnlyPremium:  capability.HasOnlyPremium,
		HasMixed:        capability.HasMixed,
		TotalRemaining:  capability.TotalRemaining,
	})
}

// GetCredits godoc
//
//	@Summary		List active credit entries
//	@Description	Active credit ledger entries in allocation order, with the total remaining credits.
//	@Tags			Credits
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CreditsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/credits [get]
func (h *CreditHandler) GetCredits(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	userPacks, err := h.creditService.GetActiveUserPacks(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	total, err := h.creditService.TotalRemaining(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.CreditsResponseDTO{
		UserPacks:      make([]dto.UserPackResponseDTO, len(userPacks)),
		TotalRemaining: total,
	}
	for i, up := range userPacks {
		response.UserPacks[i] = dto.UserPackResponseDTO{
			ID:                   up.ID,
			PackID:               up.PackID,
			SubmissionsRemaining: up.SubmissionsRemaining,
			IsPremium:            up.IsPremium,
			CreatedAt:            up.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
