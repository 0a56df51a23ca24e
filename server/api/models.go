package api

// note that these are *not* the DAO models; those are distinct and closer to
// the DB format they are in. Rather these are the models that are received from
// and sent to the client.

type CommandRequest struct {
	Username string `json:"username"`
	Command  string `json:"command"`
}

type CommandModel struct {
	URI       string      `json:"uri"`
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	Input     string      `json:"input"`
	Output    string      `json:"output"`
	Transport string      `json:"transport"`
	Created   string      `json:"created"`
	Player    PlayerModel `json:"player"`
}

type ItemModel struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PlayerModel struct {
	URI       string      `json:"uri,omitempty"`
	Name      string      `json:"name"`
	Location  string      `json:"location"`
	Health    int         `json:"health"`
	Inventory []ItemModel `json:"inventory"`
	Unlocked  []string    `json:"unlocked"`
}

type InfoModel struct {
	Version struct {
		Server string `json:"server"`
		STAG   string `json:"stag"`
	} `json:"version"`
}
