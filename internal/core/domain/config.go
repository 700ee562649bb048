package domain

// UserConfig carries per-user presentation preferences. It is a plain data
// shape: the core attaches no validation rules to it.
type UserConfig struct {
	Theme         string `json:"theme" bson:"theme"`
	Language      string `json:"language" bson:"language"`
	Notifications bool   `json:"notifications" bson:"notifications"`
}
