package initproject

// Rename runs the full rename operation programmatically and returns the
// summary, for callers embedding the tool instead of shelling out to it.
func Rename(cfg Config) (Summary, error) {
	app, err := NewApp(&cfg)
	if err != nil {
		return Summary{}, err
	}
	return app.Execute()
}
