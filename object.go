package ljson

// SetObject releases v and installs an empty Object with the given
// capacity. No members are constructed.
func (v *Value) SetObject(capacity int) {
	v.Reset()
	v.kind = Object
	if capacity > 0 {
		v.obj = make([]Member, 0, capacity)
	} else {
		v.obj = nil
	}
}

// ObjectSize returns the number of members in v. It requires v.Kind() ==
// Object.
func (v *Value) ObjectSize() int {
	v.mustBe(Object)
	return len(v.obj)
}

// ObjectCapacity returns the current storage capacity of v. It requires
// v.Kind() == Object.
func (v *Value) ObjectCapacity() int {
	v.mustBe(Object)
	return cap(v.obj)
}

func (v *Value) growObjectTo(newCap int) {
	grown := make([]Member, len(v.obj), newCap)
	copy(grown, v.obj)
	v.obj = grown
}

// ReserveObject grows v's capacity to at least capacity. It requires
// v.Kind() == Object.
func (v *Value) ReserveObject(capacity int) {
	v.mustBe(Object)
	if cap(v.obj) < capacity {
		v.growObjectTo(capacity)
	}
}

// ShrinkObject reduces v's capacity to exactly its current size. It
// requires v.Kind() == Object.
func (v *Value) ShrinkObject() {
	v.mustBe(Object)
	if cap(v.obj) > len(v.obj) {
		v.growObjectTo(len(v.obj))
	}
}

// ClearObject removes all members of v, one by one from the tail, the
// way the original C implementation does (so capacity adjusts through
// the normal remove path rather than being special-cased). It requires
// v.Kind() == Object.
func (v *Value) ClearObject() {
	v.mustBe(Object)
	for len(v.obj) != 0 {
		v.RemoveValueByIndex(len(v.obj) - 1)
	}
}

// Key returns the key of the member at index. It requires v.Kind() ==
// Object and 0 <= index < ObjectSize().
func (v *Value) Key(index int) []byte {
	v.mustBe(Object)
	return v.obj[index].Key
}

// GetValueByIndex returns a pointer to the value of the member at index.
// It requires v.Kind() == Object and 0 <= index < ObjectSize().
func (v *Value) GetValueByIndex(index int) *Value {
	v.mustBe(Object)
	return &v.obj[index].Value
}

// FindIndex returns the index of the first member whose key equals key
// (compared by raw byte content, not Unicode-normalized), or NotFound.
// It requires v.Kind() == Object.
func (v *Value) FindIndex(key []byte) int {
	v.mustBe(Object)
	for i := range v.obj {
		if string(v.obj[i].Key) == string(key) {
			return i
		}
	}
	return NotFound
}

// GetValueByKey returns a pointer to the value of the first member whose
// key equals key, or nil if absent. It requires v.Kind() == Object.
func (v *Value) GetValueByKey(key []byte) *Value {
	idx := v.FindIndex(key)
	if idx == NotFound {
		return nil
	}
	return &v.obj[idx].Value
}

// SetValueByIndex deep-copies s into the value of the member at index.
// Returns ModifyOK, or IndexWrong if index is out of range. It requires
// v.Kind() == Object.
func (v *Value) SetValueByIndex(index int, s *Value) ObjectResult {
	v.mustBe(Object)
	if index < 0 || index >= len(v.obj) {
		return IndexWrong
	}
	v.obj[index].Value = s.Clone()
	return ModifyOK
}

// SetValueByKey deep-copies key and s and either replaces the first
// existing member with that key (ModifyOK) or appends a new member
// (InsertOK), growing capacity to 1 on first insert and doubling
// thereafter. It requires v.Kind() == Object.
func (v *Value) SetValueByKey(key []byte, s *Value) ObjectResult {
	v.mustBe(Object)
	if idx := v.FindIndex(key); idx != NotFound {
		return v.SetValueByIndex(idx, s)
	}

	if len(v.obj) == cap(v.obj) {
		newCap := cap(v.obj) * 2
		if newCap == 0 {
			newCap = 1
		}
		v.growObjectTo(newCap)
	}
	v.obj = v.obj[:len(v.obj)+1]
	v.obj[len(v.obj)-1] = Member{
		Key:   append([]byte(nil), key...),
		Value: s.Clone(),
	}
	return InsertOK
}

// RemoveValueByIndex releases and removes the member at index, shifting
// the tail down. Afterwards, if 2*newSize+1 is strictly smaller than the
// current capacity, capacity shrinks to that value. Returns RemoveOK, or
// IndexWrong if index is out of range. It requires v.Kind() == Object.
func (v *Value) RemoveValueByIndex(index int) ObjectResult {
	v.mustBe(Object)
	if index < 0 || index >= len(v.obj) {
		return IndexWrong
	}
	v.obj[index].Value.Reset()
	newSize := len(v.obj) - 1
	copy(v.obj[index:newSize], v.obj[index+1:len(v.obj)])
	v.obj = v.obj[:newSize]

	newCap := 2*newSize + 1
	if newCap < cap(v.obj) {
		v.growObjectTo(newCap)
	}
	return RemoveOK
}

// RemoveValueByKey finds the first member with the given key and removes
// it via RemoveValueByIndex. Returns IndexWrong if no such member exists.
// It requires v.Kind() == Object.
func (v *Value) RemoveValueByKey(key []byte) ObjectResult {
	idx := v.FindIndex(key)
	if idx == NotFound {
		return IndexWrong
	}
	return v.RemoveValueByIndex(idx)
}
