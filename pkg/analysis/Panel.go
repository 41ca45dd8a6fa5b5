// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package analysis

import (
	"time"

	"github.com/spatialcurrent/analyst/pkg/envelope"
	"github.com/spatialcurrent/analyst/pkg/mode"
	"github.com/spatialcurrent/analyst/pkg/models"
	"github.com/spatialcurrent/analyst/pkg/query"
	"github.com/spatialcurrent/analyst/pkg/result"

	rerrors "github.com/spatialcurrent/analyst/pkg/errors"
)

type Panel struct {
	BaseUrl     string // prefix of the tile and GIS urls
	Fetcher     Fetcher
	Mode        string
	Envelope    envelope.State
	Comparison  Comparison
	Scenario1   string
	Scenario2   string
	Marker      *Marker
	Date        time.Time
	FromTime    time.Duration
	ToTime      time.Duration
	WalkSpeed   float64 // in km/h
	BikeSpeed   float64 // in km/h
	MinTime     int     // in minutes
	TimeLimit   int     // in minutes
	Shapefile   string
	CategoryId  string
	Attribute   string
	ShowTransit bool
	ShowIso     bool
	ShowPoints  bool
	Result1     *result.Result
	Result2     *result.Result
}

// NewPanel returns a panel with the default settings.
func NewPanel(fetcher Fetcher, baseUrl string) *Panel {
	state, _ := envelope.Transition(envelope.State{}, mode.Default, true)
	return &Panel{
		BaseUrl:    baseUrl,
		Fetcher:    fetcher,
		Mode:       mode.Default,
		Envelope:   state,
		Comparison: NoComparison,
		Scenario1:  models.DefaultScenarioId,
		FromTime:   query.DefaultFromTime,
		ToTime:     query.DefaultToTime,
		WalkSpeed:  query.DefaultWalkSpeed,
		BikeSpeed:  query.DefaultBikeSpeed,
		MinTime:    0,
		TimeLimit:  DefaultTimeLimit,
	}
}

// IsComparing returns true if the panel compares two scenarios.
func (p *Panel) IsComparing() bool {
	return p.Comparison == Compare
}

// Ready returns true if every result needed by the current comparison has been fetched.
func (p *Panel) Ready() bool {
	return p.Result1 != nil && (p.Result2 != nil || !p.IsComparing())
}

// Query returns the single-point query for the scenario.
func (p *Panel) Query(scenarioId string) query.SinglePointQuery {
	q := query.SinglePointQuery{
		GraphId:   scenarioId,
		Mode:      p.Mode,
		BikeSpeed: p.BikeSpeed,
		WalkSpeed: p.WalkSpeed,
		Which:     p.Envelope.Selected,
		Date:      p.Date,
		FromTime:  p.FromTime,
		ToTime:    p.ToTime,
		Shapefile: p.Shapefile,
	}
	if p.Marker != nil {
		q.Lat = p.Marker.Lat
		q.Lon = p.Marker.Lon
	}
	return q
}

func (p *Panel) clearResults() {
	p.Result1 = nil
	p.Result2 = nil
}

// SetMode changes the travel mode and updates the available envelope parameters.
func (p *Panel) SetMode(str string) (bool, error) {
	s, err := mode.Parse(str)
	if err != nil {
		return false, err
	}
	p.Mode = s.String()
	state, refresh := envelope.Transition(p.Envelope, p.Mode, false)
	p.Envelope = state
	return refresh, nil
}

// SetWhich selects the envelope parameter.
func (p *Panel) SetWhich(w envelope.Which) (bool, error) {
	state, refresh, err := envelope.Select(p.Envelope, w, false)
	if err != nil {
		return false, err
	}
	p.Envelope = state
	return refresh, nil
}

// SetMarker places the marker at the location.
func (p *Panel) SetMarker(lat float64, lon float64) (bool, error) {
	if lat < -90 || lat > 90 {
		return false, &rerrors.ErrOutOfRange{Name: query.ParameterLat, Value: lat, Min: -90, Max: 90}
	}
	if lon < -180 || lon > 180 {
		return false, &rerrors.ErrOutOfRange{Name: query.ParameterLon, Value: lon, Min: -180, Max: 180}
	}
	p.Marker = &Marker{Lat: lat, Lon: lon}
	return true, nil
}

// SetComparison switches between a single scenario and a comparison with a second scenario.
func (p *Panel) SetComparison(c Comparison, scenario2 string) (bool, error) {
	if c == Compare && len(scenario2) == 0 {
		return false, &rerrors.ErrMissingRequiredParameter{Name: query.ParameterGraphId2}
	}
	if c != Compare {
		scenario2 = ""
	}
	if c == p.Comparison && scenario2 == p.Scenario2 {
		return false, nil
	}
	p.Comparison = c
	p.Scenario2 = scenario2
	return true, nil
}

func (p *Panel) SetScenario(scenarioId string) (bool, error) {
	if len(scenarioId) == 0 {
		return false, &rerrors.ErrMissingRequiredParameter{Name: query.ParameterGraphId}
	}
	if scenarioId == p.Scenario1 {
		return false, nil
	}
	p.Scenario1 = scenarioId
	return true, nil
}

// SetTimeLimit sets the time window of the surface overlay, in minutes.
// The overlay is rendered from the fetched results, so no refresh is needed.
func (p *Panel) SetTimeLimit(minTime int, timeLimit int) (bool, error) {
	if minTime < 0 || minTime > MaxTimeLimit {
		return false, &rerrors.ErrOutOfRange{Name: query.ParameterMinTime, Value: minTime, Min: 0, Max: MaxTimeLimit}
	}
	if timeLimit < minTime || timeLimit > MaxTimeLimit {
		return false, &rerrors.ErrOutOfRange{Name: query.ParameterTimeLimit, Value: timeLimit, Min: minTime, Max: MaxTimeLimit}
	}
	p.MinTime = minTime
	p.TimeLimit = timeLimit
	return false, nil
}

// SetSpeeds sets the walk and bike speeds, in km/h.
func (p *Panel) SetSpeeds(walkSpeed float64, bikeSpeed float64) (bool, error) {
	if walkSpeed <= 0 {
		return false, &rerrors.ErrInvalidParameter{Name: query.ParameterWalkSpeed, Value: walkSpeed}
	}
	if bikeSpeed <= 0 {
		return false, &rerrors.ErrInvalidParameter{Name: query.ParameterBikeSpeed, Value: bikeSpeed}
	}
	p.WalkSpeed = walkSpeed
	p.BikeSpeed = bikeSpeed
	return true, nil
}

// SetDate sets the date and departure window.  The end of the window is only used for transit modes.
func (p *Panel) SetDate(date time.Time, fromTime time.Duration, toTime time.Duration) (bool, error) {
	if toTime < fromTime {
		return false, &rerrors.ErrInvalidParameter{Name: query.ParameterToTime, Value: toTime}
	}
	p.Date = date
	p.FromTime = fromTime
	p.ToTime = toTime
	return true, nil
}

// SetShapefile selects the destination shapefile and the attribute to chart.
func (p *Panel) SetShapefile(shapefile string, categoryId string, attribute string) bool {
	refresh := shapefile != p.Shapefile
	p.Shapefile = shapefile
	p.CategoryId = categoryId
	p.Attribute = attribute
	return refresh
}

// SetAttribute selects the attribute to chart.
func (p *Panel) SetAttribute(attribute string) bool {
	p.Attribute = attribute
	return false
}

// SetLayers toggles the map overlays.
func (p *Panel) SetLayers(showTransit bool, showIso bool, showPoints bool) bool {
	p.ShowTransit = showTransit
	p.ShowIso = showIso
	p.ShowPoints = showPoints
	return false
}
