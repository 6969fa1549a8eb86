package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"sitterdesk/internal/models"
)

const isoDate = "2006-01-02"

// Agenda item categories.
const (
	CategoryFeeding     = "feeding"
	CategoryMedicine    = "medicine"
	CategoryWalks       = "walks"
	CategoryAppointment = "appointments"
	CategoryService     = "service"
	CategoryTasks       = "tasks"
	CategoryHouse       = "house"
)

// TimeReminders labels day-before reminder items; it sorts to the end of
// the agenda.
const TimeReminders = "Reminders"

// TimeTBD labels items that have no recognizable time.
const TimeTBD = "TBD"

// Source tags name the record type an item came from. Only task- and
// appointment-sourced items are independently editable; the rest are
// projections of a larger record.
const (
	SourcePet         = "pet"
	SourceAppointment = "appointment"
	SourceService     = "service"
	SourceTask        = "task"
	SourceHouse       = "house"
)

// Item is one row of the master daily agenda. IDs are deterministic so
// the same inputs always yield the same output, element for element.
type Item struct {
	ID       string `json:"id"`
	Time     string `json:"time"`
	Category string `json:"category"`
	Source   string `json:"source"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Notes    string `json:"notes,omitempty"`
	PetID    string `json:"pet_id,omitempty"`
	PetName  string `json:"pet_name,omitempty"`
	Reminder bool   `json:"reminder,omitempty"`
}

// Input carries everything the generator needs. It is a plain snapshot;
// the generator itself performs no I/O.
type Input struct {
	Date          time.Time
	Pets          []models.Pet
	Appointments  []models.Appointment
	ServicePeople []models.ServicePerson
	Tasks         []models.DailyTask
	Stays         []models.Stay
	Instructions  []models.HouseInstruction
}

// Generate builds the master schedule for the input date: every feeding,
// dose, walk, appointment, service visit, daily task and house
// instruction due that day, sorted into a single agenda. The function is
// pure and deterministic.
func Generate(in Input) []Item {
	date := in.Date.Format(isoDate)
	weekday := in.Date.Weekday().String()
	tomorrow := in.Date.AddDate(0, 0, 1)

	var items []Item
	items = append(items, feedingItems(in.Pets)...)
	items = append(items, medicineItems(in.Pets, date)...)
	items = append(items, walkItems(in.Pets)...)
	items = append(items, appointmentItems(in.Appointments, in.Pets, date)...)
	items = append(items, serviceItems(in.ServicePeople, in.Stays, date, weekday)...)
	items = append(items, taskItems(in.Tasks)...)
	items = append(items, houseItems(in.Instructions, in.Date, tomorrow)...)

	sort.SliceStable(items, func(i, j int) bool {
		return sortKey(items[i].Time) < sortKey(items[j].Time)
	})
	return items
}

func feedingItems(pets []models.Pet) []Item {
	var items []Item
	for _, pet := range pets {
		for idx, entry := range pet.FeedingEntries() {
			subtitle := entry.Amount
			if pet.FeedingLocation != "" {
				subtitle = strings.TrimSpace(subtitle + " at " + pet.FeedingLocation)
			}
			items = append(items, Item{
				ID:       fmt.Sprintf("feeding-%s-%d", pet.ID, idx),
				Time:     entry.Time,
				Category: CategoryFeeding,
				Source:   SourcePet,
				Title:    "Feed " + pet.Name,
				Subtitle: subtitle,
				Notes:    entry.Notes,
				PetID:    pet.ID,
				PetName:  pet.Name,
			})
		}
	}
	return items
}

func medicineItems(pets []models.Pet, date string) []Item {
	var items []Item
	for _, pet := range pets {
		for idx, entry := range pet.MedicineEntries() {
			if entry.ExpiredBefore(date) {
				continue
			}
			switch {
			case entry.Smart != nil:
				items = append(items, smartMedicineItems(pet, idx, entry.Smart, date)...)
			case entry.Legacy != nil:
				items = append(items, Item{
					ID:       fmt.Sprintf("medicine-%s-%d", pet.ID, idx),
					Time:     entry.Legacy.Time,
					Category: CategoryMedicine,
					Source:   SourcePet,
					Title:    "Medicine for " + pet.Name,
					Notes:    appendNote(entry.Legacy.Medication, entry.Legacy.Notes),
					PetID:    pet.ID,
					PetName:  pet.Name,
				})
			}
		}
	}
	return items
}

// smartMedicineItems emits one agenda row per dose time. A course that
// has not started yet is skipped; one without dose times still shows
// once so the sitter knows the medication exists.
func smartMedicineItems(pet models.Pet, idx int, m *models.SmartMedicine, date string) []Item {
	if m.StartDate != "" && date < m.StartDate {
		return nil
	}
	title := "Medicine for " + pet.Name
	if len(m.DoseTimes) == 0 {
		return []Item{{
			ID:       fmt.Sprintf("medicine-%s-%d", pet.ID, idx),
			Time:     TimeTBD,
			Category: CategoryMedicine,
			Source:   SourcePet,
			Title:    title,
			Notes:    appendNote(m.Medication, m.Notes),
			PetID:    pet.ID,
			PetName:  pet.Name,
		}}
	}
	items := make([]Item, 0, len(m.DoseTimes))
	for doseIdx, dose := range m.DoseTimes {
		notes := m.Medication
		if dose.Label != "" {
			notes += " (" + dose.Label + ")"
		}
		items = append(items, Item{
			ID:       fmt.Sprintf("medicine-%s-%d-%d", pet.ID, idx, doseIdx),
			Time:     dose.Time,
			Category: CategoryMedicine,
			Source:   SourcePet,
			Title:    title,
			Notes:    appendNote(notes, m.Notes),
			PetID:    pet.ID,
			PetName:  pet.Name,
		})
	}
	return items
}

func appendNote(base, note string) string {
	switch {
	case note == "":
		return base
	case base == "":
		return note
	}
	return base + ". " + note
}

// walkItems emits only timed walk entries; an untimed row is a note to
// the owner, not an agenda slot.
func walkItems(pets []models.Pet) []Item {
	var items []Item
	for _, pet := range pets {
		for idx, entry := range pet.WalkEntries() {
			if entry.Time == "" {
				continue
			}
			items = append(items, Item{
				ID:       fmt.Sprintf("walk-%s-%d", pet.ID, idx),
				Time:     entry.Time,
				Category: CategoryWalks,
				Source:   SourcePet,
				Title:    "Walk " + pet.Name,
				Subtitle: entry.Duration,
				Notes:    entry.Notes,
				PetID:    pet.ID,
				PetName:  pet.Name,
			})
		}
	}
	return items
}

func appointmentItems(appointments []models.Appointment, pets []models.Pet, date string) []Item {
	names := make(map[string]string, len(pets))
	for _, pet := range pets {
		names[pet.ID] = pet.Name
	}
	var items []Item
	for _, appt := range appointments {
		if appt.Date != date {
			continue
		}
		apptTime := appt.Time
		if apptTime == "" {
			apptTime = TimeTBD
		}
		items = append(items, Item{
			ID:       "appointment-" + appt.ID,
			Time:     apptTime,
			Category: CategoryAppointment,
			Source:   SourceAppointment,
			Title:    appt.Type,
			Subtitle: appt.Location,
			Notes:    appt.Notes,
			PetID:    appt.ForPetID,
			PetName:  names[appt.ForPetID],
		})
	}
	return items
}

// serviceItems includes service visits only while a sitter stay covers
// the date. Date-scoped visits match on the exact date; legacy rows
// match when the stored service day mentions the weekday name.
func serviceItems(people []models.ServicePerson, stays []models.Stay, date, weekday string) []Item {
	if !anyStayCovers(stays, date) {
		return nil
	}
	var items []Item
	for _, sp := range people {
		if !serviceVisitDue(sp, date, weekday) {
			continue
		}
		visitTime := sp.StartTime
		if visitTime == "" {
			visitTime = sp.ServiceTime
		}
		if visitTime == "" {
			visitTime = TimeTBD
		}
		subtitle := ""
		if sp.EndTime != "" {
			subtitle = "until " + FormatTimeForDisplay(sp.EndTime)
		}
		items = append(items, Item{
			ID:       "service-" + sp.ID,
			Time:     visitTime,
			Category: CategoryService,
			Source:   SourceService,
			Title:    sp.Name,
			Subtitle: subtitle,
			Notes:    sp.Notes,
		})
	}
	return items
}

func anyStayCovers(stays []models.Stay, date string) bool {
	for i := range stays {
		if stays[i].Contains(date) {
			return true
		}
	}
	return false
}

func serviceVisitDue(sp models.ServicePerson, date, weekday string) bool {
	if sp.VisitDate != "" {
		return sp.VisitDate == date
	}
	return sp.ServiceDay != "" &&
		strings.Contains(strings.ToLower(sp.ServiceDay), strings.ToLower(weekday))
}

// taskItems emits only timed tasks. Untimed tasks are standing
// reminders the caller lists outside the sorted agenda.
func taskItems(tasks []models.DailyTask) []Item {
	var items []Item
	for _, task := range tasks {
		if !task.Active || task.Time == "" {
			continue
		}
		items = append(items, Item{
			ID:       "task-" + task.ID,
			Time:     task.Time,
			Category: CategoryTasks,
			Source:   SourceTask,
			Title:    task.Title,
			Notes:    task.Notes,
		})
	}
	return items
}

func houseItems(instructions []models.HouseInstruction, day, tomorrow time.Time) []Item {
	var items []Item
	for _, inst := range instructions {
		if !inst.NeedsScheduling() {
			continue
		}
		if instructionDue(inst, day) {
			items = append(items, houseItem(inst))
		}
		if inst.RemindDayBefore && instructionDue(inst, tomorrow) {
			items = append(items, Item{
				ID:       "reminder-" + inst.ID,
				Time:     TimeReminders,
				Category: CategoryHouse,
				Source:   SourceHouse,
				Title:    "Tomorrow: " + inst.DisplayTitle(),
				Notes:    reminderNotes(inst),
				Reminder: true,
			})
		}
	}
	return items
}

func houseItem(inst models.HouseInstruction) Item {
	itemTime := inst.ScheduleTime
	if itemTime == "" {
		itemTime = inst.ScheduleGeneralTime
	}
	if itemTime == "" {
		itemTime = TimeTBD
	}
	subtitle := ""
	if inst.ScheduleDurationMinutes > 0 {
		if end := CalculateEndTime(inst.ScheduleTime, inst.ScheduleDurationMinutes); end != "" {
			subtitle = "until " + FormatTimeForDisplay(end)
		}
	}
	return Item{
		ID:       "house-" + inst.ID,
		Time:     itemTime,
		Category: CategoryHouse,
		Source:   SourceHouse,
		Title:    inst.DisplayTitle(),
		Subtitle: subtitle,
	}
}

// reminderNotes describes tomorrow's occurrence. The reminder row itself
// carries no time, so the occurrence's time and duration go here.
func reminderNotes(inst models.HouseInstruction) string {
	detail := inst.ScheduleGeneralTime
	if inst.ScheduleTime != "" {
		detail = FormatTimeForDisplay(inst.ScheduleTime)
		if inst.ScheduleDurationMinutes > 0 {
			if end := CalculateEndTime(inst.ScheduleTime, inst.ScheduleDurationMinutes); end != "" {
				detail += " until " + FormatTimeForDisplay(end)
			}
		}
	}
	if detail == "" {
		return "Reminder for tomorrow"
	}
	return "Reminder for tomorrow: " + detail
}

// instructionDue evaluates the recurrence descriptor for a calendar day.
// Monthly supports the two anchors the descriptor can express, the 1st
// and the 15th.
func instructionDue(inst models.HouseInstruction, day time.Time) bool {
	switch inst.ScheduleFrequency {
	case models.FrequencyDaily:
		return true
	case models.FrequencyWeekly:
		return strings.EqualFold(inst.ScheduleDay, day.Weekday().String())
	case models.FrequencyMonthly:
		switch inst.ScheduleDay {
		case "1st":
			return day.Day() == 1
		case "15th":
			return day.Day() == 15
		}
		return false
	case models.FrequencyOneTime:
		return inst.ScheduleDate == day.Format(isoDate)
	}
	return false
}
