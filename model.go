package darksky

// Forecast is a Dark Sky forecast response.
type Forecast struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	// Offset is the timezone's current offset from UTC in hours.
	Offset    *float64   `json:"offset,omitempty"`
	Currently *Datapoint `json:"currently,omitempty"`
	Minutely  *Datablock `json:"minutely,omitempty"`
	Hourly    *Datablock `json:"hourly,omitempty"`
	Daily     *Datablock `json:"daily,omitempty"`
	Alerts    []Alert    `json:"alerts,omitempty"`
	Flags     *Flags     `json:"flags,omitempty"`
}

// Datablock holds the conditions of a location over a period of time.
type Datablock struct {
	Data    []Datapoint `json:"data,omitempty"`
	Icon    *Icon       `json:"icon,omitempty"`
	Summary *string     `json:"summary,omitempty"`
}

// Datapoint holds the conditions of a location at a moment in time.
// Every measurement is optional; the API omits what it does not know.
type Datapoint struct {
	Time int64 `json:"time"`

	ApparentTemperature         *float64    `json:"apparentTemperature,omitempty"`
	ApparentTemperatureHigh     *float64    `json:"apparentTemperatureHigh,omitempty"`
	ApparentTemperatureHighTime *int64      `json:"apparentTemperatureHighTime,omitempty"`
	ApparentTemperatureLow      *float64    `json:"apparentTemperatureLow,omitempty"`
	ApparentTemperatureLowTime  *int64      `json:"apparentTemperatureLowTime,omitempty"`
	ApparentTemperatureMax      *float64    `json:"apparentTemperatureMax,omitempty"`
	ApparentTemperatureMaxTime  *int64      `json:"apparentTemperatureMaxTime,omitempty"`
	ApparentTemperatureMin      *float64    `json:"apparentTemperatureMin,omitempty"`
	ApparentTemperatureMinTime  *int64      `json:"apparentTemperatureMinTime,omitempty"`
	CloudCover                  *float64    `json:"cloudCover,omitempty"`
	DewPoint                    *float64    `json:"dewPoint,omitempty"`
	Humidity                    *float64    `json:"humidity,omitempty"`
	Icon                        *Icon       `json:"icon,omitempty"`
	MoonPhase                   *float64    `json:"moonPhase,omitempty"`
	NearestStormBearing         *float64    `json:"nearestStormBearing,omitempty"`
	NearestStormDistance        *float64    `json:"nearestStormDistance,omitempty"`
	Ozone                       *float64    `json:"ozone,omitempty"`
	PrecipAccumulation          *float64    `json:"precipAccumulation,omitempty"`
	PrecipIntensity             *float64    `json:"precipIntensity,omitempty"`
	PrecipIntensityError        *float64    `json:"precipIntensityError,omitempty"`
	PrecipIntensityMax          *float64    `json:"precipIntensityMax,omitempty"`
	PrecipIntensityMaxTime      *int64      `json:"precipIntensityMaxTime,omitempty"`
	PrecipProbability           *float64    `json:"precipProbability,omitempty"`
	PrecipType                  *PrecipType `json:"precipType,omitempty"`
	Pressure                    *float64    `json:"pressure,omitempty"`
	Summary                     *string     `json:"summary,omitempty"`
	SunriseTime                 *int64      `json:"sunriseTime,omitempty"`
	SunsetTime                  *int64      `json:"sunsetTime,omitempty"`
	Temperature                 *float64    `json:"temperature,omitempty"`
	TemperatureHigh             *float64    `json:"temperatureHigh,omitempty"`
	TemperatureHighTime         *int64      `json:"temperatureHighTime,omitempty"`
	TemperatureLow              *float64    `json:"temperatureLow,omitempty"`
	TemperatureLowTime          *int64      `json:"temperatureLowTime,omitempty"`
	TemperatureMax              *float64    `json:"temperatureMax,omitempty"`
	TemperatureMaxTime          *int64      `json:"temperatureMaxTime,omitempty"`
	TemperatureMin              *float64    `json:"temperatureMin,omitempty"`
	TemperatureMinTime          *int64      `json:"temperatureMinTime,omitempty"`
	UVIndex                     *float64    `json:"uvIndex,omitempty"`
	UVIndexTime                 *int64      `json:"uvIndexTime,omitempty"`
	Visibility                  *float64    `json:"visibility,omitempty"`
	WindBearing                 *float64    `json:"windBearing,omitempty"`
	WindGust                    *float64    `json:"windGust,omitempty"`
	WindGustTime                *int64      `json:"windGustTime,omitempty"`
	WindSpeed                   *float64    `json:"windSpeed,omitempty"`
}

// Alert is a severe weather warning issued by a governmental authority.
type Alert struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Time        int64    `json:"time"`
	Expires     *int64   `json:"expires,omitempty"`
	Regions     []string `json:"regions"`
	URI         string   `json:"uri"`
}

// Flags holds metadata about the request.
type Flags struct {
	DarkskyUnavailable *bool    `json:"darksky-unavailable,omitempty"`
	NearestStation     *float64 `json:"nearest-station,omitempty"`
	Sources            []string `json:"sources,omitempty"`
	Units              *Unit    `json:"units,omitempty"`
}

// Icon is a machine-readable summary of a datapoint or datablock.
// Unknown values are kept as sent.
type Icon string

const (
	IconClearDay          Icon = "clear-day"
	IconClearNight        Icon = "clear-night"
	IconCloudy            Icon = "cloudy"
	IconFog               Icon = "fog"
	IconHail              Icon = "hail"
	IconPartlyCloudyDay   Icon = "partly-cloudy-day"
	IconPartlyCloudyNight Icon = "partly-cloudy-night"
	IconRain              Icon = "rain"
	IconSleet             Icon = "sleet"
	IconSnow              Icon = "snow"
	IconThunderstorm      Icon = "thunderstorm"
	IconTornado           Icon = "tornado"
	IconWind              Icon = "wind"
)

// PrecipType is the type of precipitation at a datapoint.
type PrecipType string

const (
	PrecipRain  PrecipType = "rain"
	PrecipSleet PrecipType = "sleet"
	PrecipSnow  PrecipType = "snow"
)

// Severity is how severe an [Alert] is.
type Severity string

const (
	SeverityAdvisory Severity = "advisory"
	SeverityWatch    Severity = "watch"
	SeverityWarning  Severity = "warning"
)
