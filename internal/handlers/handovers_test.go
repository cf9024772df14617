package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vancheszz/Registry/internal/models"
)

func TestGroupOpenAssets(t *testing.T) {
	assets := []models.Asset{
		{ID: 1, Title: "Обращение", AssetType: models.AssetTypeClientRequests, Status: models.AssetStatusActive},
		{ID: 2, Title: "Закрытый", AssetType: models.AssetTypeCase, Status: models.AssetStatusCompleted},
		{ID: 3, Title: "Кейс", AssetType: models.AssetTypeCase, Status: models.AssetStatusActive},
		{ID: 4, Title: "Срочный", AssetType: models.AssetTypeOrangeCase, Status: models.AssetStatusOnHold},
	}

	groups := groupOpenAssets(assets)
	require.Len(t, groups, 3)

	// порядок групп фиксирован: кейсы, срочные, обращения
	assert.Equal(t, "Медицинский кейс", groups[0].Label)
	assert.Equal(t, "Срочный кейс", groups[1].Label)
	assert.Equal(t, "Обращения пациентов", groups[2].Label)

	// завершённый кейс не попал ни в одну группу
	for _, g := range groups {
		for _, a := range g.Assets {
			assert.NotEqual(t, 2, a.ID)
		}
	}
	// приостановленный — попал
	assert.Equal(t, 4, groups[1].Assets[0].ID)
}

func TestGroupOpenAssetsEmpty(t *testing.T) {
	assert.Empty(t, groupOpenAssets(nil))
	assert.Empty(t, groupOpenAssets([]models.Asset{
		{ID: 1, AssetType: models.AssetTypeCase, Status: models.AssetStatusCompleted},
	}))
}
