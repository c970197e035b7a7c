package insights

import "time"

// Window intervalo semiabierto [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// MonthWindow mes calendario que contiene t, en la zona horaria de t.
func MonthWindow(t time.Time) Window {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return Window{Start: start, End: start.AddDate(0, 1, 0)}
}

// Previous mes calendario inmediatamente anterior al inicio de w.
func (w Window) Previous() Window {
	return MonthWindow(w.Start.AddDate(0, -1, 0))
}

// Contains indica si t cae dentro de la ventana.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// TrailingMonths devuelve los n meses calendario que terminan en el mes de t,
// del más antiguo al más reciente.
func TrailingMonths(t time.Time, n int) []Window {
	if n <= 0 {
		return nil
	}
	out := make([]Window, n)
	cur := MonthWindow(t)
	for i := n - 1; i >= 0; i-- {
		out[i] = cur
		cur = cur.Previous()
	}
	return out
}

// Label etiqueta YYYY-MM del mes de inicio.
func (w Window) Label() string {
	return w.Start.Format("2006-01")
}
