package input

// AxisTracker remembers the last value seen for each axis of one device.
type AxisTracker struct {
	values map[Axis]float32
}

// NewAxisTracker returns an empty tracker.
func NewAxisTracker() *AxisTracker {
	return &AxisTracker{values: make(map[Axis]float32)}
}

// Record stores value for axis and returns the value it replaces. The first
// observation of an axis reports a previous value of 0.
func (t *AxisTracker) Record(axis Axis, value float32) float32 {
	previous := t.values[axis]
	t.values[axis] = value
	return previous
}

// Value returns the last recorded value for axis.
func (t *AxisTracker) Value(axis Axis) float32 {
	return t.values[axis]
}

// Devices maps connected gamepads to their trackers.
type Devices struct {
	trackers map[DeviceID]*AxisTracker
}

// NewDevices returns an empty device table.
func NewDevices() *Devices {
	return &Devices{trackers: make(map[DeviceID]*AxisTracker)}
}

// Ensure attaches a tracker to id if it has none. It reports whether a new
// tracker was created.
func (d *Devices) Ensure(id DeviceID) bool {
	if _, ok := d.trackers[id]; ok {
		return false
	}
	d.trackers[id] = NewAxisTracker()
	return true
}

// Get returns the tracker for id, if any.
func (d *Devices) Get(id DeviceID) (*AxisTracker, bool) {
	t, ok := d.trackers[id]
	return t, ok
}

// Remove drops the tracker for id. It reports whether one existed.
func (d *Devices) Remove(id DeviceID) bool {
	if _, ok := d.trackers[id]; !ok {
		return false
	}
	delete(d.trackers, id)
	return true
}

// Len returns the number of tracked devices.
func (d *Devices) Len() int {
	return len(d.trackers)
}
