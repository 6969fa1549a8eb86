package services

import (
	"testing"

	"sitterdesk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPetService(t *testing.T) *PetService {
	t.Helper()
	return NewPetService(setupTestDB(t), newMockConfig())
}

func TestPetServiceCreateNormalizesTimes(t *testing.T) {
	svc := newPetService(t)

	pet := &models.Pet{
		Name:            "Rex",
		FeedingSchedule: []byte(`[{"time": "7:00 AM", "amount": "1 cup"}, {"time": "6 pm", "amount": "1 cup"}]`),
		WalkSchedule:    []byte(`[{"time": "8:30am", "duration": "30 minutes"}]`),
	}
	require.NoError(t, svc.Create(pet))
	require.NotEmpty(t, pet.ID)

	saved, err := svc.Get(pet.ID)
	require.NoError(t, err)

	feedings := saved.FeedingEntries()
	require.Len(t, feedings, 2)
	assert.Equal(t, "07:00", feedings[0].Time)
	assert.Equal(t, "18:00", feedings[1].Time)

	walks := saved.WalkEntries()
	require.Len(t, walks, 1)
	assert.Equal(t, "08:30", walks[0].Time)
}

func TestPetServiceRecomputesSmartMedicineEndDate(t *testing.T) {
	svc := newPetService(t)

	pet := &models.Pet{
		Name: "Rex",
		MedicineSchedule: []byte(`[{
			"medication": "Clavamox",
			"frequency_per_day": 2,
			"remaining_doses": 9,
			"start_date": "2025-09-01",
			"calculated_end_date": "2099-12-31",
			"dose_times": [{"time": "7:30 AM"}, {"time": "7:30 PM"}]
		}]`),
	}
	require.NoError(t, svc.Create(pet))

	saved, err := svc.Get(pet.ID)
	require.NoError(t, err)

	medicines := saved.MedicineEntries()
	require.Len(t, medicines, 1)
	require.NotNil(t, medicines[0].Smart)
	assert.Equal(t, "2025-09-05", medicines[0].Smart.CalculatedEndDate,
		"stale stored end date is recomputed on save")
	assert.Equal(t, "07:30", medicines[0].Smart.DoseTimes[0].Time)
	assert.Equal(t, "19:30", medicines[0].Smart.DoseTimes[1].Time)
}

func TestPetServiceLegacyMedicineNormalized(t *testing.T) {
	svc := newPetService(t)

	pet := &models.Pet{
		Name:             "Rex",
		MedicineSchedule: []byte(`[{"time": "8 AM", "medication": "Apoquel", "end_date": "2025-09-10"}]`),
	}
	require.NoError(t, svc.Create(pet))

	saved, err := svc.Get(pet.ID)
	require.NoError(t, err)

	medicines := saved.MedicineEntries()
	require.Len(t, medicines, 1)
	require.NotNil(t, medicines[0].Legacy)
	assert.Equal(t, "08:00", medicines[0].Legacy.Time)
	assert.Equal(t, "2025-09-10", medicines[0].Legacy.EndDate)
}

func TestPetServiceUpdatePreservesIdentity(t *testing.T) {
	svc := newPetService(t)

	pet := &models.Pet{Name: "Rex"}
	require.NoError(t, svc.Create(pet))

	updated, err := svc.Update(pet.ID, &models.Pet{Name: "Rex II", Personality: "calmer now"})
	require.NoError(t, err)
	assert.Equal(t, pet.ID, updated.ID)
	assert.Equal(t, "Rex II", updated.Name)
	assert.Equal(t, testPropertyID, updated.PropertyID)
}

func TestPetServiceUnparseableTimesKeptVerbatim(t *testing.T) {
	svc := newPetService(t)

	pet := &models.Pet{
		Name:            "Whiskers",
		FeedingSchedule: []byte(`[{"time": "whenever she yells", "amount": "1 scoop"}]`),
	}
	require.NoError(t, svc.Create(pet))

	saved, err := svc.Get(pet.ID)
	require.NoError(t, err)
	assert.Equal(t, "whenever she yells", saved.FeedingEntries()[0].Time)
}

func TestPetServiceDelete(t *testing.T) {
	svc := newPetService(t)

	pet := &models.Pet{Name: "Rex"}
	require.NoError(t, svc.Create(pet))
	require.NoError(t, svc.Delete(pet.ID))

	_, err := svc.Get(pet.ID)
	assert.Error(t, err)

	assert.Error(t, svc.Delete("no-such-id"))
}
