package model

import "time"

// Configuration is an admin-managed typed lookup entry used
// to populate form choices on the client
type Configuration struct {
	ID           string    `json:"id" msgpack:"id"`
	ConfigType   string    `json:"config_type" msgpack:"configType"`
	ConfigName   string    `json:"config_name" msgpack:"configName"`
	ConfigValue  string    `json:"config_value" msgpack:"configValue"`
	DisplayOrder int       `json:"display_order" msgpack:"displayOrder"`
	IsActive     bool      `json:"is_active" msgpack:"isActive"`
	CreatedAt    time.Time `json:"created_at" msgpack:"createdAt"`
	UpdatedAt    time.Time `json:"updated_at" msgpack:"updatedAt"`
}
