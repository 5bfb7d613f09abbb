package extract

// TranslationTable maps field names to display labels in another language.
type TranslationTable map[string]string

// Label returns the display label for name. The name itself is returned when
// translation is off or the table has no entry for it.
func (t TranslationTable) Label(name string, enabled bool) string {
	if !enabled {
		return name
	}
	if l, ok := t[name]; ok {
		return l
	}
	return name
}
