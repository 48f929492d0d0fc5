package view

import (
	"html/template"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// dateTimeLayout renders dates as DD/MM/YY HH:mm.
const dateTimeLayout = "02/01/06 15:04"

type formData struct {
	Edit         bool
	Type         domain.EventType
	TypeLabel    string
	Types        []typeOption
	Destination  string
	Destinations []string
	DateFrom     string
	DateTo       string
	Price        string
	Offers       []offerOption
	Description  string
	Pictures     []domain.Picture
}

type typeOption struct {
	Value   domain.EventType
	Label   string
	Checked bool
}

type offerOption struct {
	ID      int
	Title   string
	Price   int
	Checked bool
}

var formTemplate = template.Must(template.New("trip-event-form").Parse(formHTML))

const formHTML = `<form class="event event--edit" action="#" method="post">
  <header class="event__header">
    <div class="event__type-wrapper">
      <label class="event__type  event__type-btn" for="event-type-toggle-1">
        <span class="visually-hidden">Choose event type</span>
        <img class="event__type-icon" width="17" height="17" src="img/icons/{{.Type}}.png" alt="Event type icon">
      </label>
      <input class="event__type-toggle  visually-hidden" id="event-type-toggle-1" type="checkbox">
      <div class="event__type-list">
        <fieldset class="event__type-group">
          <legend class="visually-hidden">Event type</legend>
          {{- range .Types}}
          <div class="event__type-item">
            <input id="event-type-{{.Value}}-1" class="event__type-input  visually-hidden" type="radio" name="event-type" value="{{.Value}}"{{if .Checked}} checked{{end}}>
            <label class="event__type-label  event__type-label--{{.Value}}" for="event-type-{{.Value}}-1">{{.Label}}</label>
          </div>
          {{- end}}
        </fieldset>
      </div>
    </div>

    <div class="event__field-group  event__field-group--destination">
      <label class="event__label  event__type-output" for="event-destination-1">{{.TypeLabel}}</label>
      <input class="event__input  event__input--destination" id="event-destination-1" type="text" name="event-destination" value="{{.Destination}}" list="destination-list-1">
      <datalist id="destination-list-1">
        {{- range .Destinations}}
        <option value="{{.}}"></option>
        {{- end}}
      </datalist>
    </div>

    <div class="event__field-group  event__field-group--time">
      <label class="visually-hidden" for="event-start-time-1">From</label>
      <input class="event__input  event__input--time" id="event-start-time-1" type="text" name="event-start-time" value="{{.DateFrom}}">
      &mdash;
      <label class="visually-hidden" for="event-end-time-1">To</label>
      <input class="event__input  event__input--time" id="event-end-time-1" type="text" name="event-end-time" value="{{.DateTo}}">
    </div>

    <div class="event__field-group  event__field-group--price">
      <label class="event__label" for="event-price-1">
        <span class="visually-hidden">Price</span>
        &euro;
      </label>
      <input class="event__input  event__input--price" id="event-price-1" type="text" name="event-price" value="{{.Price}}">
    </div>

    <button class="event__save-btn  btn  btn--blue" type="submit" name="action" value="submit">Save</button>
    {{- if .Edit}}
    <button class="event__reset-btn" type="submit" name="action" value="cancel">Delete</button>
    <button class="event__rollup-btn" type="submit" name="action" value="expand">
      <span class="visually-hidden">Close event</span>
    </button>
    {{- else}}
    <button class="event__reset-btn" type="submit" name="action" value="cancel">Cancel</button>
    {{- end}}
  </header>
  <section class="event__details">
    <section class="event__section  event__section--offers">
      <h3 class="event__section-title  event__section-title--offers">Offers</h3>
      <div class="event__available-offers">
        {{- range .Offers}}
        <div class="event__offer-selector">
          <input class="event__offer-checkbox  visually-hidden" id="event-offer-{{.ID}}-1" type="checkbox" name="event-offer-{{.ID}}"{{if .Checked}} checked{{end}}>
          <label class="event__offer-label" for="event-offer-{{.ID}}-1">
            <span class="event__offer-title">{{.Title}}</span>
            &plus;&euro;&nbsp;
            <span class="event__offer-price">{{.Price}}</span>
          </label>
        </div>
        {{- end}}
      </div>
    </section>

    <section class="event__section  event__section--destination">
      <h3 class="event__section-title  event__section-title--destination">Destination</h3>
      <p class="event__destination-description">{{.Description}}</p>
      <div class="event__photos-container">
        <div class="event__photos-tape">
          {{- range .Pictures}}
          <img class="event__photo" src="{{.Src}}" alt="{{.Description}}">
          {{- end}}
        </div>
      </div>
    </section>
  </section>
</form>
`
