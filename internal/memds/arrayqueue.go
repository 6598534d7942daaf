package memds

// ArrayQueue is a thread unsafe FIFO queue backed by a slice.
type ArrayQueue[T any] struct {
	elements []T
	head     int
}

func NewArrayQueue[T any]() *ArrayQueue[T] {
	return &ArrayQueue[T]{}
}

// Enqueue adds a value to the end of the queue.
func (q *ArrayQueue[T]) Enqueue(value T) {
	q.elements = append(q.elements, value)
}

// Dequeue removes the first element of the queue and returns it, ok is false if the queue was empty.
func (q *ArrayQueue[T]) Dequeue() (value T, ok bool) {
	if q.head >= len(q.elements) {
		return
	}
	value = q.elements[q.head]

	var zero T
	q.elements[q.head] = zero
	q.head++

	//compact once half of the backing array is made of dequeued slots.
	if q.head*2 >= cap(q.elements) {
		oldLen := len(q.elements)
		remaining := copy(q.elements, q.elements[q.head:])
		clear(q.elements[remaining:oldLen])
		q.elements = q.elements[:remaining]
		q.head = 0
	}
	return value, true
}

// Empty returns true if queue does not contain any elements.
func (q *ArrayQueue[T]) Empty() bool {
	return q.head >= len(q.elements)
}

// Size returns the number of elements within the queue.
func (q *ArrayQueue[T]) Size() int {
	return len(q.elements) - q.head
}
