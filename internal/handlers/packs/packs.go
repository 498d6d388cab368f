package packs

import (
	"context"
	"net/http"

	"github.com/andredsp/taxgate/internal/domain"
	"github.com/andredsp/taxgate/internal/dto"
	"github.com/andredsp/taxgate/pkg/utils"
)

//go:generate mockgen -source=packs.go -destination=mock.go -package=packs

type Service interface {
	GetPacks(ctx context.Context, onlyActive bool) ([]domain.Pack, error)
}

type PackHandler struct {
	paymentService Service
}

func New(paymentService Service) *PackHandler {
	return &PackHandler{
		paymentService: paymentService,
	}
}

// ListPacks godoc
//
//	@Summary		List credit packs
//	@Description	List catalog packs; pass purchasable=true to only get packs open for purchase.
//	@Tags			Packs
//	@Produce		json
//	@Param			purchasable	query		bool	false	"Only active packs"
//	@Success		200			{array}		dto.PackResponseDTO
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/packs [get]
func (h *PackHandler) ListPacks(w http.ResponseWriter, r *http.Request) {
	onlyActive := r.URL.Query().Get("purchasable") == "true"

	packs, err := h.paymentService.GetPacks(r.Context(), onlyActive)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.PackResponseDTO, len(packs))
	for i, pack := range packs {
		response[i] = dto.PackResponseDTO{
			ID:                 pack.ID,
			Name:               pack.Name,
			Price:              pack.Price,
			SubmissionsGranted: pack.SubmissionsGranted,
			IsPremium:          pack.IsPremium,
			IsActive:           pack.IsActive,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
