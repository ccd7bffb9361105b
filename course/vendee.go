package course

import "github.com/a-bouts/nav-bot/latlon"

// DefaultStart is Les Sables d'Olonne.
var DefaultStart = latlon.LatLon{Lat: 46.470243, Lon: -1.788456}

// Vendee is the westbound route through the North-West passage and the
// Bering strait, back home by the Indian ocean and the Cape of Good Hope.
func Vendee(start latlon.LatLon) *Course {
	return New("vendee", vendeeCheckpoints(), start)
}

func vendeeCheckpoints() []Checkpoint {
	return []Checkpoint{
		{Name: "Biscay", Latitude: 47.259668, Longitude: -12.307703, Radius: 50},
		{Latitude: 58.242263, Longitude: -50.246452, Radius: 50},
		{Name: "Baffin", Latitude: 74.369396, Longitude: -63.317311, Radius: 50},
		{Latitude: 74.243486, Longitude: -78.445666, Radius: 50},
		{Latitude: 74.137806, Longitude: -88.763979, Radius: 50},
		{Latitude: 74.285566, Longitude: -96.211784, Radius: 50},
		{Latitude: 74.484131, Longitude: -98.880967, Radius: 50},
		{Latitude: 74.348479, Longitude: -107.717569, Radius: 50},
		{Latitude: 73.784153, Longitude: -111.685024, Radius: 50},
		{Latitude: 73.799267, Longitude: -113.872269, Radius: 50},
		{Latitude: 75.059851, Longitude: -123.269867, Radius: 15},
		{Latitude: 74.425129, Longitude: -126.274171, Radius: 5},
		{Latitude: 71.108255, Longitude: -128.696315, Radius: 50},
		{Latitude: 69.858095, Longitude: -136.182943, Radius: 50},
		{Latitude: 70.262470, Longitude: -141.180715, Radius: 50},
		{Latitude: 70.361510, Longitude: -142.856392, Radius: 50},
		{Latitude: 70.582164, Longitude: -147.732131, Radius: 50},
		{Latitude: 70.746083, Longitude: -149.286656, Radius: 50},
		{Name: "Barrow", Latitude: 71.707721, Longitude: -156.545591, Radius: 50},
		{Latitude: 69.414574, Longitude: -169.977017, Radius: 15},
		{Name: "Bering", Latitude: 66.070089, Longitude: -168.394463, Radius: 50},
		{Latitude: 65.714540, Longitude: -168.518280, Radius: 5},
		{Latitude: 64.331784, Longitude: -168.878476, Radius: 5},
		{Latitude: 63.490345, Longitude: -166.661021, Radius: 5},
		{Latitude: 61.322482, Longitude: -168.653354, Radius: 5},
		{Latitude: 57.289452, Longitude: -170.984819, Radius: 5},
		{Name: "Aleutians", Latitude: 52.360316, Longitude: -171.544929, Radius: 5},
		{Name: "Pacific", Latitude: 17.850557, Longitude: -169.261167, Radius: 50},
		{Latitude: 8.705004, Longitude: 173.375068, Radius: 50},
		{Latitude: 4.882734, Longitude: 173.432531, Radius: 50},
		{Latitude: 3.288166, Longitude: 161.774183, Radius: 50},
		{Latitude: 4.621448, Longitude: 130.998087, Radius: 50},
		{Latitude: 5.069115, Longitude: 126.864848, Radius: 50},
		{Name: "Celebes", Latitude: 1.640280, Longitude: 122.914325, Radius: 50},
		{Latitude: 2.040850, Longitude: 119.894179, Radius: 50},
		{Name: "Makassar", Latitude: -3.324410, Longitude: 117.804409, Radius: 50},
		{Name: "Lombok", Latitude: -8.080066, Longitude: 116.043850, Radius: 5},
		{Latitude: -8.787996, Longitude: 115.728954, Radius: 50},
		{Name: "Indian", Latitude: -14.311934, Longitude: 82.143549, Radius: 50},
		{Name: "Good Hope", Latitude: -39.095684, Longitude: 33.919624, Radius: 50},
		{Latitude: -38.838873, Longitude: 9.147060, Radius: 50},
		{Name: "Guinea", Latitude: -0.628860, Longitude: -1.507954, Radius: 50},
		{Latitude: 3.038772, Longitude: -20.571164, Radius: 150},
		{Name: "Azores", Latitude: 19.257600, Longitude: -33.173621, Radius: 50},
		{Latitude: 47.259668, Longitude: -12.307703, Radius: 50},
	}
}
