package redis

const ns = "smartpark:v1"

func KeyGarageAvailability() string {
	return ns + ":parking:availability"
}

func KeyParkingOverview() string {
	return ns + ":parking:overview"
}
