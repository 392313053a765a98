package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"doctorsportal/models"
)

// demoCatalog seeds the memory driver when no seed file is configured.
var demoCatalog = []models.Service{
	{Name: "Teeth Orthodontics", Price: 50, Slots: []string{"08.00 AM - 08.30 AM", "08.30 AM - 09.00 AM", "09.00 AM - 09.30 AM", "09.30 AM - 10.00 AM"}},
	{Name: "Cosmetic Dentistry", Price: 40, Slots: []string{"10.05 AM - 10.30 AM", "10.30 AM - 11.00 AM", "11.05 AM - 11.30 AM"}},
	{Name: "Teeth Cleaning", Price: 30, Slots: []string{"08.00 AM - 08.30 AM", "05.00 PM - 05.30 PM", "05.30 PM - 06.00 PM"}},
	{Name: "Cavity Protection", Price: 35, Slots: []string{"02.00 PM - 02.30 PM", "02.30 PM - 03.00 PM"}},
}

// DemoCatalog returns a copy of the built-in service catalog.
func DemoCatalog() []models.Service {
	out := make([]models.Service, 0, len(demoCatalog))
	for _, s := range demoCatalog {
		s.Slots = append([]string(nil), s.Slots...)
		out = append(out, s)
	}
	return out
}

// LoadServiceSeed reads a JSON array of services ({name, slots, price}) from path.
// An empty path yields the demo catalog.
func LoadServiceSeed(path string) ([]models.Service, error) {
	if path == "" {
		return DemoCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read service seed %s: %w", path, err)
	}
	var services []models.Service
	if err := json.Unmarshal(data, &services); err != nil {
		return nil, fmt.Errorf("failed to decode service seed %s: %w", path, err)
	}
	for i, s := range services {
		if s.Name == "" {
			return nil, fmt.Errorf("service seed %s: entry %d has no name", path, i)
		}
	}
	return services, nil
}

// NewSeededMemoryStore builds a memory Store whose catalog comes from LoadServiceSeed.
func NewSeededMemoryStore(seedFile string) (*Store, error) {
	services, err := LoadServiceSeed(seedFile)
	if err != nil {
		return nil, err
	}
	return NewMemoryStore(services...), nil
}
