package service

//go:generate go run go.uber.org/mock/mockgen -source=./coordinator.go -destination=../mocks/coordinator_mock.go -package=mocks

import (
	"context"
	"fmt"
	"maps"
	"salon/config"
	"salon/infras/otel"
	bookingDto "salon/internal/domains/booking/model/dto"
	bookingService "salon/internal/domains/booking/service"
	cartModel "salon/internal/domains/cart/model"
	cartService "salon/internal/domains/cart/service"
	catalogModel "salon/internal/domains/catalog/model"
	catalogService "salon/internal/domains/catalog/service"
	notificationModel "salon/internal/domains/notification/model"
	notificationService "salon/internal/domains/notification/service"
	"salon/internal/domains/wizard/model"
	"salon/shared"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/validator"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	noticeSlotTaken = "the selected time has just been booked by someone else, please choose another time"
	servicesJoiner  = ", "
)

// Coordinator drives one booking wizard. All methods are safe for concurrent use; store calls
// run without holding the state lock so loading flags stay observable through Snapshot.
type Coordinator interface {
	Snapshot() model.Snapshot
	GoNext(ctx context.Context) bool
	GoBack() bool
	SetField(ctx context.Context, field, value string) error
	SelectServices(ctx context.Context, keys []string) error
	RefreshSlots(ctx context.Context)
	Submit(ctx context.Context) error
	Reset() error
	LoadLocations(ctx context.Context)
	LoadServices(ctx context.Context)
}

// Dependencies are the collaborators shared by every wizard.
type Dependencies struct {
	Catalog  catalogService.Catalog
	Booking  bookingService.Booking
	Cart     cartService.Cart
	Notifier notificationService.Notifier
	Calendar *Calendar
	Config   *config.Config
	Otel     otel.Otel
	Clock    func() time.Time
}

func (d Dependencies) now() time.Time {
	if d.Clock != nil {
		return d.Clock()
	}

	return time.Now()
}

type coordinatorImpl struct {
	deps      Dependencies
	visitorID string

	mu           sync.Mutex
	step         model.Step
	draft        model.Draft
	loading      model.Loading
	locations    []catalogModel.Location
	items        []catalogModel.Item
	blocked      []string
	slotSeq      uint64
	errors       map[string]string
	fieldErrors  map[string]string
	notice       string
	confirmation *model.Confirmation
}

func NewCoordinator(deps Dependencies, visitorID string) Coordinator {
	return &coordinatorImpl{
		deps:        deps,
		visitorID:   visitorID,
		step:        model.StepSelectLocation,
		errors:      map[string]string{},
		fieldErrors: map[string]string{},
	}
}

func (c *coordinatorImpl) Snapshot() model.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := model.Snapshot{
		Step:         c.step,
		Draft:        c.draft,
		Loading:      c.loading,
		CanGoNext:    !c.loading.Submitting && c.step < model.StepEnterPersonalData && c.stepValidLocked(c.step),
		CanGoBack:    !c.loading.Submitting && c.step > model.StepSelectLocation && c.step != model.StepConfirmed,
		CanSubmit:    !c.loading.Submitting && c.step == model.StepEnterPersonalData && c.completeLocked(),
		Locations:    slices.Clone(c.locations),
		Items:        slices.Clone(c.items),
		Dates:        c.deps.Calendar.Dates(),
		TimeSlots:    c.deps.Calendar.Slots(),
		BlockedSlots: slices.Clone(c.blocked),
		Summary:      model.SummaryFrom(cartModel.Sum(c.selectedItemsLocked(), c.deps.Config.App.Currency)),
		Errors:       maps.Clone(c.errors),
		FieldErrors:  maps.Clone(c.fieldErrors),
		Notice:       c.notice,
	}

	snapshot.Draft.Services = slices.Clone(c.draft.Services)

	if snapshot.Locations == nil {
		snapshot.Locations = []catalogModel.Location{}
	}

	if snapshot.Items == nil {
		snapshot.Items = []catalogModel.Item{}
	}

	if snapshot.BlockedSlots == nil {
		snapshot.BlockedSlots = []string{}
	}

	if c.confirmation != nil {
		confirmation := *c.confirmation
		snapshot.Confirmation = &confirmation
	}

	return snapshot
}

// GoNext advances one step when the current one is complete. When it is not, the missing
// fields are reported through Snapshot.FieldErrors and the step stays.
func (c *coordinatorImpl) GoNext(ctx context.Context) bool {
	c.mu.Lock()

	if c.loading.Submitting || c.step >= model.StepEnterPersonalData {
		c.mu.Unlock()

		return false
	}

	if !c.stepValidLocked(c.step) {
		maps.Copy(c.fieldErrors, c.stepErrorsLocked(c.step))
		c.mu.Unlock()

		return false
	}

	c.step++
	c.notice = ""
	next := c.step
	needItems := len(c.items) == 0
	c.mu.Unlock()

	switch next {
	case model.StepSelectServices:
		if needItems {
			c.LoadServices(ctx)
		}

		c.prefillFromCart(ctx)
	case model.StepSelectDateTime:
		c.RefreshSlots(ctx)
	}

	return true
}

func (c *coordinatorImpl) GoBack() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loading.Submitting || c.step <= model.StepSelectLocation || c.step == model.StepConfirmed {
		return false
	}

	c.step--
	c.fieldErrors = map[string]string{}

	return true
}

func (c *coordinatorImpl) SetField(ctx context.Context, field, value string) (err error) {
	c.mu.Lock()

	if err = c.editableLocked(); err != nil {
		c.mu.Unlock()

		return err
	}

	refresh := false

	switch field {
	case model.FieldLocation:
		err = c.setLocationLocked(value)
	case model.FieldDate:
		refresh, err = c.setDateLocked(value)
	case model.FieldTime:
		err = c.setTimeLocked(value)
	case model.FieldName, model.FieldPhone, model.FieldEmail, model.FieldNotes:
		c.setContactLocked(field, value)
	default:
		err = failure.Validation(field, fmt.Sprintf("unknown field %s", field))
	}

	if err == nil {
		c.clampLocked()
	}

	c.mu.Unlock()

	if refresh {
		c.RefreshSlots(ctx)
	}

	return err
}

// SelectServices replaces the selection. Duplicated keys are kept once, in first-seen order.
func (c *coordinatorImpl) SelectServices(ctx context.Context, keys []string) error {
	c.mu.Lock()

	if err := c.editableLocked(); err != nil {
		c.mu.Unlock()

		return err
	}

	needItems := len(c.items) == 0
	c.mu.Unlock()

	if needItems {
		c.LoadServices(ctx)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.editableLocked(); err != nil {
		return err
	}

	selected := make([]string, 0, len(keys))

	for _, key := range keys {
		if slices.Contains(selected, key) {
			continue
		}

		if c.itemLocked(key) == nil {
			return failure.Validation(model.FieldServices, fmt.Sprintf("unknown service %s", key)) //nolint:wrapcheck
		}

		selected = append(selected, key)
	}

	c.draft.Services = selected
	if len(selected) > 0 {
		delete(c.fieldErrors, model.FieldServices)
	}

	c.clampLocked()

	return nil
}

// RefreshSlots queries the taken times for the current location and date. Only the result of
// the latest query is applied; a failure shows every slot as open.
func (c *coordinatorImpl) RefreshSlots(ctx context.Context) {
	c.mu.Lock()

	c.slotSeq++
	seq := c.slotSeq
	locationID, date := c.draft.LocationID, c.draft.Date

	if locationID == 0 || date == "" {
		c.blocked = nil
		c.loading.Slots = false
		c.mu.Unlock()

		return
	}

	c.loading.Slots = true
	delete(c.errors, model.CategorySlots)
	c.mu.Unlock()

	blocked, err := c.deps.Booking.BlockedSlots(ctx, locationID, date)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.slotSeq {
		log.Debug().Uint64("seq", seq).Uint64("latest", c.slotSeq).Msg("discarding superseded slot query")

		return
	}

	c.loading.Slots = false

	if err != nil {
		log.Warn().Err(err).Int64("location", locationID).Str("date", date).Msg("slot check unavailable, showing every slot as open")

		c.blocked = nil
		c.errors[model.CategorySlots] = err.Error()

		return
	}

	c.blocked = slices.Clone(blocked)

	if c.draft.Time != "" && slices.Contains(c.blocked, c.draft.Time) {
		c.draft.Time = ""
		c.clampLocked()
	}
}

// Submit writes the booking. Any write failure sends the wizard back to time selection with
// fresh availability; the same slot is never retried.
func (c *coordinatorImpl) Submit(ctx context.Context) (err error) {
	ctx, scope := c.deps.Otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Wizard.Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	c.mu.Lock()

	if c.loading.Submitting {
		c.mu.Unlock()

		return failure.SubmissionInFlightError
	}

	if c.step != model.StepEnterPersonalData {
		c.mu.Unlock()

		return failure.BadRequestFromString(fmt.Sprintf("booking cannot be submitted from step %s", c.step)) //nolint:wrapcheck
	}

	if !c.completeLocked() {
		fields := c.stepErrorsLocked(c.step)
		maps.Copy(c.fieldErrors, fields)
		c.mu.Unlock()

		return firstFieldError(fields)
	}

	contact := c.draft.Contact()
	req := bookingDto.ReserveRequest{
		LocationID:  c.draft.LocationID,
		Services:    slices.Clone(c.draft.Services),
		BookingDate: c.draft.Date,
		BookingTime: c.draft.Time,
		ClientName:  contact.Name,
		ClientPhone: contact.Phone,
		ClientEmail: contact.Email,
		Notes:       strings.TrimSpace(contact.Notes),
	}

	location := c.locationLocked(c.draft.LocationID)
	items := c.selectedItemsLocked()

	c.loading.Submitting = true
	c.notice = ""
	c.mu.Unlock()

	res, err := c.deps.Booking.Reserve(ctx, req)

	c.mu.Lock()
	c.loading.Submitting = false

	if err != nil {
		event := log.Error()
		if failure.Is(err, failure.KindSlotConflict) {
			event = log.Warn()
		}

		event.Err(err).Int64("location", req.LocationID).Str("date", req.BookingDate).Str("time", req.BookingTime).
			Msg("booking write rejected, asking for another time")

		c.step = model.StepSelectDateTime
		c.draft.Time = ""
		c.notice = noticeSlotTaken
		c.mu.Unlock()

		c.RefreshSlots(ctx)

		return failure.SlotConflictError
	}

	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}

	confirmation := &model.Confirmation{
		BookingID:    res.ID,
		LocationID:   req.LocationID,
		LocationName: location.Name,
		Date:         req.BookingDate,
		Time:         req.BookingTime,
		Services:     names,
		ClientName:   req.ClientName,
		Summary:      model.SummaryFrom(cartModel.Sum(items, c.deps.Config.App.Currency)),
	}

	c.step = model.StepConfirmed
	c.confirmation = confirmation
	c.draft = model.Draft{}
	c.blocked = nil
	c.fieldErrors = map[string]string{}
	c.slotSeq++
	c.mu.Unlock()

	if err := c.deps.Cart.Clear(ctx, c.visitorID); err != nil {
		log.Error().Err(err).Str("visitor", c.visitorID).Msg("failed to clear cart after booking")
	}

	c.deps.Notifier.NotifyAdmin(ctx, notificationModel.Notice{
		BookingID:    res.ID,
		ClientName:   req.ClientName,
		ClientEmail:  req.ClientEmail,
		ClientPhone:  req.ClientPhone,
		Date:         bookingDto.DisplayDate(req.BookingDate),
		Time:         req.BookingTime,
		LocationName: location.Name,
		Services:     strings.Join(names, servicesJoiner),
		Notes:        req.Notes,
	})

	scope.SetAttribute("booking.id", res.ID)

	return nil
}

// Reset discards the draft and any confirmation and starts over at location selection.
func (c *coordinatorImpl) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loading.Submitting {
		return failure.SubmissionInFlightError
	}

	c.step = model.StepSelectLocation
	c.draft = model.Draft{}
	c.blocked = nil
	c.loading.Slots = false
	c.slotSeq++
	c.fieldErrors = map[string]string{}
	c.notice = ""
	c.confirmation = nil

	return nil
}

func (c *coordinatorImpl) LoadLocations(ctx context.Context) {
	c.mu.Lock()
	c.loading.Locations = true
	delete(c.errors, model.CategoryLocations)
	c.mu.Unlock()

	locations, err := c.deps.Catalog.ListLocations(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.loading.Locations = false

	if err != nil {
		log.Warn().Err(err).Msg("locations unavailable for booking wizard")

		c.errors[model.CategoryLocations] = err.Error()

		return
	}

	c.locations = locations
	c.clampLocked()
}

func (c *coordinatorImpl) LoadServices(ctx context.Context) {
	c.mu.Lock()
	c.loading.Services = true
	delete(c.errors, model.CategoryServices)
	c.mu.Unlock()

	items, err := c.deps.Catalog.ListItems(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.loading.Services = false

	if err != nil {
		log.Warn().Err(err).Msg("services unavailable for booking wizard")

		c.errors[model.CategoryServices] = err.Error()

		return
	}

	c.items = items
}

// prefillFromCart copies the visitor's cart into an empty service selection.
func (c *coordinatorImpl) prefillFromCart(ctx context.Context) {
	c.mu.Lock()
	empty := len(c.draft.Services) == 0
	c.mu.Unlock()

	if !empty {
		return
	}

	entries, err := c.deps.Cart.List(ctx, c.visitorID)
	if err != nil {
		log.Warn().Err(err).Str("visitor", c.visitorID).Msg("cart unavailable, nothing to pre-select")

		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.draft.Services) > 0 || c.step != model.StepSelectServices {
		return
	}

	for _, entry := range entries {
		key := entry.Key()
		if c.itemLocked(key) != nil && !slices.Contains(c.draft.Services, key) {
			c.draft.Services = append(c.draft.Services, key)
		}
	}
}

func (c *coordinatorImpl) editableLocked() error {
	if c.loading.Submitting {
		return failure.SubmissionInFlightError
	}

	if c.step == model.StepConfirmed {
		return failure.BadRequestFromString("booking is already confirmed, reset to start a new one") //nolint:wrapcheck
	}

	return nil
}

func (c *coordinatorImpl) setLocationLocked(value string) error {
	id, err := shared.ConvertStringToInt64(value)
	if err != nil || c.locationLocked(id) == nil {
		return failure.Validation(model.FieldLocation, "unknown location") //nolint:wrapcheck
	}

	delete(c.fieldErrors, model.FieldLocation)

	if id == c.draft.LocationID {
		return nil
	}

	c.draft.LocationID = id
	c.draft.Services = nil
	c.draft.Date = ""
	c.draft.Time = ""
	c.blocked = nil
	c.loading.Slots = false
	c.slotSeq++

	return nil
}

func (c *coordinatorImpl) setDateLocked(value string) (bool, error) {
	if !c.deps.Calendar.IsOpen(value) {
		return false, failure.Validation(model.FieldDate, "date is not available for booking") //nolint:wrapcheck
	}

	delete(c.fieldErrors, model.FieldDate)

	if value == c.draft.Date {
		return false, nil
	}

	c.draft.Date = value
	c.draft.Time = ""
	c.blocked = nil
	c.loading.Slots = false
	c.slotSeq++

	return c.draft.LocationID != 0, nil
}

func (c *coordinatorImpl) setTimeLocked(value string) error {
	if !c.deps.Calendar.HasSlot(value) {
		return failure.Validation(model.FieldTime, "unknown time slot") //nolint:wrapcheck
	}

	if c.draft.Date == "" {
		return failure.Validation(model.FieldDate, "select a date first") //nolint:wrapcheck
	}

	if slices.Contains(c.blocked, value) {
		return failure.Validation(model.FieldTime, "time is already booked") //nolint:wrapcheck
	}

	c.draft.Time = value
	delete(c.fieldErrors, model.FieldTime)

	return nil
}

func (c *coordinatorImpl) setContactLocked(field, value string) {
	switch field {
	case model.FieldName:
		c.draft.Name = value
	case model.FieldPhone:
		c.draft.Phone = value
	case model.FieldEmail:
		c.draft.Email = value
	case model.FieldNotes:
		c.draft.Notes = value
	}

	contact := c.draft.Contact()

	if msg, ok := validator.FieldErrors(&contact)[field]; ok {
		c.fieldErrors[field] = msg
	} else {
		delete(c.fieldErrors, field)
	}
}

func (c *coordinatorImpl) stepValidLocked(step model.Step) bool {
	switch step {
	case model.StepSelectLocation:
		return c.locationLocked(c.draft.LocationID) != nil
	case model.StepSelectServices:
		return len(c.draft.Services) > 0
	case model.StepSelectDateTime:
		return c.draft.Date != "" && c.draft.Time != "" && !slices.Contains(c.blocked, c.draft.Time)
	case model.StepEnterPersonalData:
		contact := c.draft.Contact()

		return validator.FieldErrors(&contact) == nil
	default:
		return false
	}
}

func (c *coordinatorImpl) completeLocked() bool {
	for step := model.StepSelectLocation; step <= model.StepEnterPersonalData; step++ {
		if !c.stepValidLocked(step) {
			return false
		}
	}

	return true
}

// clampLocked moves the wizard back to the first step whose data is no longer complete.
func (c *coordinatorImpl) clampLocked() {
	if c.step == model.StepConfirmed {
		return
	}

	for step := model.StepSelectLocation; step < c.step; step++ {
		if !c.stepValidLocked(step) {
			c.step = step

			return
		}
	}
}

func (c *coordinatorImpl) stepErrorsLocked(step model.Step) map[string]string {
	fields := map[string]string{}

	switch step {
	case model.StepSelectLocation:
		fields[model.FieldLocation] = "select a location"
	case model.StepSelectServices:
		fields[model.FieldServices] = "select at least one service"
	case model.StepSelectDateTime:
		if c.draft.Date == "" {
			fields[model.FieldDate] = "select a date"
		}

		if c.draft.Time == "" || slices.Contains(c.blocked, c.draft.Time) {
			fields[model.FieldTime] = "select an available time"
		}
	case model.StepEnterPersonalData:
		for previous := model.StepSelectLocation; previous < step; previous++ {
			if !c.stepValidLocked(previous) {
				maps.Copy(fields, c.stepErrorsLocked(previous))
			}
		}

		contact := c.draft.Contact()
		maps.Copy(fields, validator.FieldErrors(&contact))
	}

	return fields
}

func (c *coordinatorImpl) locationLocked(id int64) *catalogModel.Location {
	for i := range c.locations {
		if c.locations[i].ID == id {
			return &c.locations[i]
		}
	}

	return nil
}

func (c *coordinatorImpl) itemLocked(key string) *catalogModel.Item {
	for i := range c.items {
		if c.items[i].Key() == key {
			return &c.items[i]
		}
	}

	return nil
}

func (c *coordinatorImpl) selectedItemsLocked() []catalogModel.Item {
	items := make([]catalogModel.Item, 0, len(c.draft.Services))

	for _, key := range c.draft.Services {
		if item := c.itemLocked(key); item != nil {
			items = append(items, *item)
		}
	}

	return items
}

var fieldOrder = []string{
	model.FieldLocation, model.FieldServices, model.FieldDate, model.FieldTime,
	model.FieldName, model.FieldPhone, model.FieldEmail, model.FieldNotes,
}

func firstFieldError(fields map[string]string) error {
	for _, field := range fieldOrder {
		if msg, ok := fields[field]; ok {
			return failure.Validation(field, msg) //nolint:wrapcheck
		}
	}

	return failure.BadRequestFromString("booking details are incomplete") //nolint:wrapcheck
}
