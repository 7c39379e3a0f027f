package ljson

// SetArray releases v and installs an empty Array with the given
// capacity. No elements are constructed.
func (v *Value) SetArray(capacity int) {
	v.Reset()
	v.kind = Array
	if capacity > 0 {
		v.arr = make([]Value, 0, capacity)
	} else {
		v.arr = nil
	}
}

// ArraySize returns the number of elements in v. It requires v.Kind() ==
// Array.
func (v *Value) ArraySize() int {
	v.mustBe(Array)
	return len(v.arr)
}

// ArrayCapacity returns the current storage capacity of v. It requires
// v.Kind() == Array.
func (v *Value) ArrayCapacity() int {
	v.mustBe(Array)
	return cap(v.arr)
}

func (v *Value) mustBe(k Kind) {
	if v.kind != k {
		panic(typeErrorf(v.kind, k))
	}
}

// growArrayTo reallocates v's backing storage to exactly newCap, copying
// existing elements. It never uses append's automatic growth, so
// cap(v.arr) stays the single source of truth for "capacity" the way
// spec.md requires.
func (v *Value) growArrayTo(newCap int) {
	grown := make([]Value, len(v.arr), newCap)
	copy(grown, v.arr)
	v.arr = grown
}

// ReserveArray grows v's capacity to at least capacity. It is a no-op if
// v already has sufficient capacity. It requires v.Kind() == Array.
func (v *Value) ReserveArray(capacity int) {
	v.mustBe(Array)
	if cap(v.arr) < capacity {
		v.growArrayTo(capacity)
	}
}

// ShrinkArray reduces v's capacity to exactly its current size. It
// requires v.Kind() == Array.
func (v *Value) ShrinkArray() {
	v.mustBe(Array)
	if cap(v.arr) > len(v.arr) {
		v.growArrayTo(len(v.arr))
	}
}

// ClearArray erases all elements of v. Capacity is preserved; call
// ShrinkArray afterwards to reclaim it. It requires v.Kind() == Array.
func (v *Value) ClearArray() {
	v.mustBe(Array)
	for i := range v.arr {
		v.arr[i].Reset()
	}
	v.arr = v.arr[:0]
}

// GetArrayElement returns a pointer to the element at index. The pointer
// is valid only until the next mutation of v. It requires v.Kind() ==
// Array and 0 <= index < ArraySize().
func (v *Value) GetArrayElement(index int) *Value {
	v.mustBe(Array)
	return &v.arr[index]
}

// PushBack deep-copies e and appends it to v. Capacity grows to 1 on the
// first push and doubles thereafter. It requires v.Kind() == Array.
func (v *Value) PushBack(e *Value) {
	v.mustBe(Array)
	if len(v.arr) == cap(v.arr) {
		newCap := cap(v.arr) * 2
		if newCap == 0 {
			newCap = 1
		}
		v.growArrayTo(newCap)
	}
	v.arr = v.arr[:len(v.arr)+1]
	v.arr[len(v.arr)-1] = e.Clone()
}

// PopBack releases the last element of v. It requires v.Kind() == Array
// and ArraySize() > 0.
func (v *Value) PopBack() {
	v.mustBe(Array)
	last := len(v.arr) - 1
	v.arr[last].Reset()
	v.arr = v.arr[:last]
}

// InsertArrayElement deep-copies e and inserts it at index, shifting
// later elements up by one. It requires v.Kind() == Array and index <=
// ArraySize().
func (v *Value) InsertArrayElement(e *Value, index int) {
	v.mustBe(Array)
	v.PushBack(e)
	for i := len(v.arr) - 1; i != index; i-- {
		Swap(&v.arr[i-1], &v.arr[i])
	}
}

// EraseArray releases and removes count elements starting at index,
// shifting the tail down. Afterwards, if 2*newSize+1 is strictly smaller
// than the current capacity, capacity shrinks to that value — the same
// rule the original C implementation applies on erase. It requires
// v.Kind() == Array and index+count <= ArraySize().
func (v *Value) EraseArray(index, count int) {
	v.mustBe(Array)
	for i := index; i < index+count; i++ {
		v.arr[i].Reset()
	}
	newSize := len(v.arr) - count
	copy(v.arr[index:newSize], v.arr[index+count:len(v.arr)])
	v.arr = v.arr[:newSize]

	newCap := 2*newSize + 1
	if newCap < cap(v.arr) {
		v.growArrayTo(newCap)
	}
}
