package services

import (
	"time"

	app_errors "sitterdesk/internal/errors"
	"sitterdesk/internal/models"
	"sitterdesk/internal/schedule"
	"sitterdesk/internal/types"

	"gorm.io/gorm"
)

// ScheduleService assembles the master daily schedule. It loads the
// collections from the database and hands them to the pure generator, so
// the ordering and grouping rules stay independently testable.
type ScheduleService struct {
	db         *gorm.DB
	propertyID string
}

// NewScheduleService constructs a ScheduleService.
func NewScheduleService(db *gorm.DB, configManager types.ConfigManager) *ScheduleService {
	return &ScheduleService{db: db, propertyID: configManager.GetPropertyID()}
}

// DayView is the display-ready schedule for one day. Untimed tasks sit
// outside the sorted agenda as standing reminders.
type DayView struct {
	Date         string             `json:"date"`
	Items        []DisplayItem      `json:"items"`
	UntimedTasks []models.DailyTask `json:"untimed_tasks"`
	Groups       []DisplayGroup     `json:"groups"`
}

// DisplayItem is an agenda item with its time rendered for display.
type DisplayItem struct {
	schedule.Item
	DisplayTime string `json:"display_time"`
}

// DisplayGroup is a run of items sharing one display time.
type DisplayGroup struct {
	Time  string        `json:"time"`
	Items []DisplayItem `json:"items"`
}

// ForDate builds the master schedule for a calendar day.
func (s *ScheduleService) ForDate(date time.Time) (*DayView, error) {
	input, err := s.loadInput(date)
	if err != nil {
		return nil, err
	}

	items := schedule.Generate(*input)
	groups := schedule.GroupByTime(items)

	view := &DayView{
		Date:         date.Format(isoDate),
		Items:        make([]DisplayItem, 0, len(items)),
		UntimedTasks: make([]models.DailyTask, 0),
		Groups:       make([]DisplayGroup, 0, len(groups)),
	}
	for _, item := range items {
		view.Items = append(view.Items, toDisplayItem(item))
	}
	for _, task := range input.Tasks {
		if task.Time == "" {
			view.UntimedTasks = append(view.UntimedTasks, task)
		}
	}
	for _, group := range groups {
		dg := DisplayGroup{Time: group.Time, Items: make([]DisplayItem, 0, len(group.Items))}
		for _, item := range group.Items {
			dg.Items = append(dg.Items, toDisplayItem(item))
		}
		view.Groups = append(view.Groups, dg)
	}
	return view, nil
}

func toDisplayItem(item schedule.Item) DisplayItem {
	displayTime := item.Time
	if displayTime == "" {
		displayTime = "No time specified"
	} else {
		displayTime = schedule.FormatTimeForDisplay(displayTime)
	}
	return DisplayItem{Item: item, DisplayTime: displayTime}
}

func (s *ScheduleService) loadInput(date time.Time) (*schedule.Input, error) {
	input := &schedule.Input{Date: date}
	scoped := func() *gorm.DB { return s.db.Where("property_id = ?", s.propertyID) }

	if err := scoped().Order("created_at ASC").Find(&input.Pets).Error; err != nil {
		return nil, app_errors.ParseDBError(err)
	}
	// Appointments are filtered to the exact day here to avoid loading
	// the whole history; the generator filters again defensively.
	if err := scoped().Where("date = ?", date.Format(isoDate)).Find(&input.Appointments).Error; err != nil {
		return nil, app_errors.ParseDBError(err)
	}
	if err := scoped().Find(&input.ServicePeople).Error; err != nil {
		return nil, app_errors.ParseDBError(err)
	}
	if err := scoped().Where("active = ?", true).Order("created_at ASC").Find(&input.Tasks).Error; err != nil {
		return nil, app_errors.ParseDBError(err)
	}
	if err := scoped().Where("active = ?", true).Find(&input.Stays).Error; err != nil {
		return nil, app_errors.ParseDBError(err)
	}
	if err := scoped().Order("created_at ASC").Find(&input.Instructions).Error; err != nil {
		return nil, app_errors.ParseDBError(err)
	}
	return input, nil
}
