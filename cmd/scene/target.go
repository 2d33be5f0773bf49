package scene

// StatuePosition is where the statue stands and where the lights gather
// before the pointer moves.
var StatuePosition = Vec3{0, 0, -6}

// EffectiveTarget is the point the lights orbit.
func EffectiveTarget(pointer, locked Vec3, isLocked bool) Vec3 {
	if isLocked {
		return locked
	}
	return pointer
}

// Target tracks the pointer and the click-to-lock state.
type Target struct {
	pointer  Vec3
	locked   Vec3
	isLocked bool
}

func NewTarget() *Target {
	return &Target{pointer: StatuePosition}
}

// Move follows the pointer. Ignored while locked.
func (t *Target) Move(p Vec3) {
	if t.isLocked {
		return
	}
	t.pointer = p
}

// Click toggles the lock. Locking captures p; unlocking discards it.
func (t *Target) Click(p Vec3) {
	if t.isLocked {
		t.isLocked = false
		t.locked = Vec3{}
		return
	}
	t.isLocked = true
	t.locked = p
}

func (t *Target) Effective() Vec3 {
	return EffectiveTarget(t.pointer, t.locked, t.isLocked)
}

func (t *Target) Locked() (Vec3, bool) {
	return t.locked, t.isLocked
}

func (t *Target) Pointer() Vec3 {
	return t.pointer
}
