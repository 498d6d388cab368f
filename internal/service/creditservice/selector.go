package creditservice

import "github.com/andredsp/taxgate/internal/domain"

// ByAllocationOrder is the single comparator behind credit allocation:
// premium entries before standard ones, oldest first within a tier, id as
// the final tie-break. Reports whether a should be consumed before b.
func ByAllocationOrder(a, b domain.UserPack) bool {
	if a.IsPremium != b.IsPremium {
		return a.IsPremium
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}

// SelectUserPack picks the credit entry a new submission should debit from
// a list already in allocation order. A premium request needs a premium
// entry; a standard request takes the first entry of either tier, so
// premium inventory covers standard submissions when it is first in line.
func SelectUserPack(userPacks []domain.UserPack, tier domain.Tier) (*domain.UserPack, error) {
	if len(userPacks) == 0 {
		return nil, ErrNoCredits
	}
	for i := range userPacks {
		if tier == domain.TierPremium && !userPacks[i].IsPremium {
			continue
		}
		return &userPacks[i], nil
	}
	return nil, ErrNoTierCredits
}
