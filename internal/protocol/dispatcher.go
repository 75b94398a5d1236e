package protocol

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/myacars/myacars/internal/model"
	"github.com/myacars/myacars/internal/queue"
	"github.com/myacars/myacars/internal/repository"
)

// Wire sentinels. The client matches these literally, including the
// NONE/NO_DATA asymmetry between empty flight and airport listings.
const (
	replyAuthFailed = "AUTH_FAILED"
	replyError      = "ERROR"
	replyNone       = "NONE"
	replyNoData     = "NO_DATA"
	replySuccess    = "SUCCESS"
)

// Cache keys for the two catalog payloads.
const (
	cacheKeyAirports = "acars:airports"
	cacheKeyAircraft = "acars:aircraft"
)

// Config carries the deployment constants the protocol embeds in replies.
type Config struct {
	AirlineICAO string
	FirstName   string
	LastName    string
	RankLevel   string
	RankString  string
	UserID      string
	Password    string
	EnableChat  bool
	Version     string // reported in the handshake banner
}

type handlerFunc func(ctx context.Context, req Request) (string, error)

// Dispatcher routes inbound actions to their handlers. Each action is a
// closed table entry; first match wins and there is no fallthrough. An
// unknown or missing action yields the handshake banner the client probes
// with. Domain failures become wire sentinels; only storage faults are
// returned as errors for the HTTP layer to surface.
type Dispatcher struct {
	cfg       Config
	sessions  SessionStore
	flights   FlightStore
	positions PositionStore
	airports  AirportCatalog
	aircraft  AircraftCatalog
	cache     PayloadCache   // optional
	events    EventPublisher // optional
	handlers  map[string]handlerFunc
}

// NewDispatcher wires the dispatch table. cache and events may be nil;
// the corresponding branches then degrade to plain reads and no events.
func NewDispatcher(cfg Config, sessions SessionStore, flights FlightStore, positions PositionStore,
	airports AirportCatalog, aircraft AircraftCatalog, cache PayloadCache, events EventPublisher) *Dispatcher {
	d := &Dispatcher{
		cfg:       cfg,
		sessions:  sessions,
		flights:   flights,
		positions: positions,
		airports:  airports,
		aircraft:  aircraft,
		cache:     cache,
		events:    events,
	}
	d.handlers = map[string]handlerFunc{
		"manuallogin":        d.manualLogin,
		"automaticlogin":     d.automaticLogin,
		"verifysession":      d.verifySession,
		"getpilotcenterdata": d.pilotCenterData,
		"getairports":        d.airportList,
		"getaircraft":        d.aircraftList,
		"getbidflights":      d.bidFlightList,
		"positionreport":     d.positionReport,
		"filepirep":          d.filePirep,

		// Actions the gateway does not support. The replies are what the
		// client expects for "nothing here", not real errors.
		"bidonflight":     replyWith(replyAuthFailed),
		"deletebidflight": replyWith(replyAuthFailed),
		"createflight":    replyWith(replyAuthFailed),
		"searchpireps":    replyWith(replyNone),
		"searchflights":   replyWith(replyNone),
		"getpirepdata":    replyWith(""),
	}
	return d
}

// Dispatch runs the handler for the request's action. Unknown actions get
// the handshake banner.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (string, error) {
	if h, ok := d.handlers[req.Action]; ok {
		return h(ctx, req)
	}
	return fmt.Sprintf("Script OK, Frame Version: myACARS/%s, Interface Version: myACARS/%s",
		d.cfg.Version, d.cfg.Version), nil
}

func replyWith(reply string) handlerFunc {
	return func(context.Context, Request) (string, error) { return reply, nil }
}

// userInfo is the nine-field record both login actions return. The session
// id is echoed from the request, not read back from storage.
func (d *Dispatcher) userInfo(req Request) string {
	return Encode(",",
		"1",                     // dbid
		d.cfg.AirlineICAO,       // code
		"0001",                  // pilotid
		req.Query("sessionid"),  // sessionid
		d.cfg.FirstName,         // firstname
		d.cfg.LastName,          // lastname
		"",                      // email
		d.cfg.RankLevel,         // ranklevel
		d.cfg.RankString,        // rankstring
	)
}

func (d *Dispatcher) manualLogin(ctx context.Context, req Request) (string, error) {
	if req.Query("userid") != d.cfg.UserID || req.Form("password") != d.cfg.Password {
		return replyAuthFailed, nil
	}
	if _, err := d.sessions.Create(ctx, req.Query("sessionid")); err != nil {
		return "", err
	}
	return d.userInfo(req), nil
}

func (d *Dispatcher) automaticLogin(ctx context.Context, req Request) (string, error) {
	if req.Query("dbid") != "1" {
		return replyAuthFailed, nil
	}
	_, err := d.sessions.Renew(ctx, req.Query("oldsessionid"), req.Query("sessionid"))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return replyAuthFailed, nil
		}
		return "", err
	}
	return d.userInfo(req), nil
}

func (d *Dispatcher) verifySession(ctx context.Context, req Request) (string, error) {
	if !d.cfg.EnableChat {
		return replyAuthFailed, nil
	}
	if req.Query("dbid") != "1" {
		return replyAuthFailed, nil
	}
	sess, err := d.sessions.FindByToken(ctx, req.Query("sessionid"))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return replyAuthFailed, nil
		}
		return "", err
	}
	return Encode(",", sess.SessionID, d.cfg.FirstName, d.cfg.LastName), nil
}

func (d *Dispatcher) pilotCenterData(ctx context.Context, req Request) (string, error) {
	if req.Query("dbid") != "1" {
		return replyAuthFailed, nil
	}
	stats, err := d.flights.CompletedStats(ctx)
	if err != nil {
		return "", err
	}
	hours := fmt.Sprintf("%02d:%02d:00", stats.TotalMinutes/60, stats.TotalMinutes%60)
	avg := 0
	if stats.Flights > 0 {
		avg = floorDiv(stats.LandingRateSum, stats.Flights)
	}
	return Encode(",", hours, stats.Flights, avg, stats.Flights), nil
}

func (d *Dispatcher) airportList(ctx context.Context, req Request) (string, error) {
	if d.cache != nil {
		if payload, ok := d.cache.Get(ctx, cacheKeyAirports); ok {
			return payload, nil
		}
	}
	airports, err := d.airports.ListAll(ctx)
	if err != nil {
		return "", err
	}
	if len(airports) == 0 {
		// The empty-catalog sentinel is not cached so a first import
		// shows up within one request.
		return replyNoData, nil
	}
	records := make([]any, 0, len(airports))
	for _, a := range airports {
		records = append(records, Encode("|",
			a.ID, strings.ToUpper(a.ICAO), a.Name, a.Latitude, a.Longitude, a.Country))
	}
	payload := Encode(";", records...)
	if d.cache != nil {
		d.cache.Set(ctx, cacheKeyAirports, payload)
	}
	return payload, nil
}

func (d *Dispatcher) aircraftList(ctx context.Context, req Request) (string, error) {
	if d.cache != nil {
		if payload, ok := d.cache.Get(ctx, cacheKeyAircraft); ok {
			return payload, nil
		}
	}
	fleet, err := d.aircraft.ListAll(ctx)
	if err != nil {
		return "", err
	}
	// An empty fleet is an empty join, not a sentinel.
	records := make([]any, 0, len(fleet))
	for _, a := range fleet {
		records = append(records, Encode(",",
			a.ID, a.Name, a.ICAO, a.Registration, a.MaxPassengers, a.MaxCargo, d.cfg.RankLevel))
	}
	payload := Encode(";", records...)
	if len(fleet) > 0 && d.cache != nil {
		d.cache.Set(ctx, cacheKeyAircraft, payload)
	}
	return payload, nil
}

func (d *Dispatcher) bidFlightList(ctx context.Context, req Request) (string, error) {
	flights, err := d.flights.ListOpen(ctx)
	if err != nil {
		return "", err
	}
	if len(flights) == 0 {
		return replyNone, nil
	}
	records := make([]any, 0, len(flights))
	for _, f := range flights {
		records = append(records, Encode("|",
			f.ID,
			f.ID,
			f.AirlineICAO,
			f.FlightNumber,
			f.OriginICAO,
			f.DestinationICAO,
			f.Route,
			f.FlightLevel*100, // stored in hundreds of feet, sent in feet
			f.AircraftID,
			"N/A",
			"N/A",
			"N/A",
			"randomopen",
			"",
			"",
		))
	}
	return Encode(";", records...), nil
}

// authenticate covers the shared preconditions of the two mutating
// actions: dbid, a valid session and a resolvable bid. It returns a
// sentinel reply when a precondition fails.
func (d *Dispatcher) authenticate(ctx context.Context, req Request) (*model.Flight, string, error) {
	if req.Query("dbid") != "1" {
		return nil, replyAuthFailed, nil
	}
	if _, err := d.sessions.FindByToken(ctx, req.Query("sessionid")); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, replyAuthFailed, nil
		}
		return nil, "", err
	}
	bidID, err := strconv.ParseInt(req.Query("bidid"), 10, 64)
	if err != nil {
		return nil, replyError, nil
	}
	flight, err := d.flights.GetByID(ctx, bidID)
	if err != nil {
		if errors.Is(err, repository.ErrFlightNotFound) {
			return nil, replyError, nil
		}
		return nil, "", err
	}
	return flight, "", nil
}

// maybeUpdateRoute persists a submitted route only when the field was
// present and differs from the stored value.
func (d *Dispatcher) maybeUpdateRoute(ctx context.Context, req Request, flight *model.Flight) error {
	route, ok := req.FormOK("route")
	if !ok || route == flight.Route {
		return nil
	}
	return d.flights.UpdateRoute(ctx, flight.ID, route)
}

func (d *Dispatcher) positionReport(ctx context.Context, req Request) (string, error) {
	flight, sentinel, err := d.authenticate(ctx, req)
	if err != nil || sentinel != "" {
		return sentinel, err
	}
	if err := d.maybeUpdateRoute(ctx, req, flight); err != nil {
		return "", err
	}

	var phase *int
	if raw, ok := req.QueryOK("phase"); ok {
		v := parseIntField(raw)
		phase = &v
	}
	pos := &model.Position{
		FlightID:    flight.ID,
		Latitude:    ParseCoordinate(req.Query("latitude")),
		Longitude:   ParseCoordinate(req.Query("longitude")),
		Altitude:    parseIntField(req.Query("altitude")),
		Heading:     parseIntField(req.Query("magneticheading")),
		GroundSpeed: parseIntField(req.Query("groundspeed")),
		Phase:       phase,
	}
	if err := d.positions.Append(ctx, pos); err != nil {
		return "", err
	}

	if d.events != nil {
		ev := queue.PositionReportedEvent{
			FlightID:    pos.FlightID,
			Latitude:    pos.Latitude,
			Longitude:   pos.Longitude,
			Altitude:    pos.Altitude,
			Heading:     pos.Heading,
			GroundSpeed: pos.GroundSpeed,
			Phase:       pos.Phase,
			ReportedAt:  time.Now().UTC().Format(time.RFC3339),
		}
		if err := d.events.PublishPositionReported(ctx, ev); err != nil {
			log.Printf("protocol: position event publish failed: %v", err)
		}
	}
	return replySuccess, nil
}

func (d *Dispatcher) filePirep(ctx context.Context, req Request) (string, error) {
	flight, sentinel, err := d.authenticate(ctx, req)
	if err != nil || sentinel != "" {
		return sentinel, err
	}
	if err := d.maybeUpdateRoute(ctx, req, flight); err != nil {
		return "", err
	}

	logText := FixupLog(req.Form("log"))
	var comments *string
	if c, ok := req.FormOK("comments"); ok {
		comments = &c
	}
	landingRate := parseIntField(req.Query("landingrate"))
	duration := ParseFlightTime(req.Query("flighttime"))

	if err := d.flights.FileReport(ctx, flight.ID, logText, comments, landingRate, duration); err != nil {
		return "", err
	}

	if d.events != nil {
		ev := queue.PirepFiledEvent{
			FlightID:        flight.ID,
			LandingRate:     landingRate,
			DurationMinutes: duration,
			FiledAt:         time.Now().UTC().Format(time.RFC3339),
		}
		if err := d.events.PublishPirepFiled(ctx, ev); err != nil {
			log.Printf("protocol: pirep event publish failed: %v", err)
		}
	}
	return replySuccess, nil
}

// floorDiv is integer division rounding toward negative infinity; landing
// rate sums are negative, so truncation would round the average up.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
