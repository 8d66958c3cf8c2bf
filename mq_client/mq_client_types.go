package mq_client

type Exchange struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type Queue struct {
	Name    string `yaml:"name"`
	Durable bool   `yaml:"durable"`
}

type Binding struct {
	Queue      string `yaml:"queue"`
	CleanStart bool   `yaml:"clean_start"`
	Exchange   string `yaml:"exchange"`
}

type Channel struct {
	Prefetch int `yaml:"prefetch"`
}

type MQClientConfig struct {
	Exchange struct {
		Notification Exchange `yaml:"notification"`
		Events       Exchange `yaml:"events"`
		Presale      Exchange `yaml:"presale"`
	}
	Queue struct {
		PresaleProcessor Queue `yaml:"presale_processor"`
		InfluxWriter     Queue `yaml:"influx_writer"`
		PresaleError     Queue `yaml:"presale_error"`
		EventsProcessor  Queue `yaml:"events_processor"`
	}
	Binding struct {
		PresaleProcessor Binding `yaml:"presale_processor"`
		InfluxWriter     Binding `yaml:"influx_writer"`
		PresaleError     Binding `yaml:"presale_error"`
		EventsProcessor  Binding `yaml:"events_processor"`
	}
	Channel struct {
		PresaleProcessor Channel `yaml:"presale_processor"`
	}
}
