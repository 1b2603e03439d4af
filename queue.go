package main

// waitQueue is the FIFO list of clients awaiting an opponent. It is
// owned by the hub loop, so no locking is needed.
type waitQueue struct {
	ids []uint64
}

// enqueue appends id and, as soon as two clients are waiting, pairs off
// the two oldest. paired is true when a pair was formed; the queue is
// never left holding two matchable clients between calls.
func (q *waitQueue) enqueue(id uint64) (first, second uint64, paired bool) {
	q.ids = append(q.ids, id)
	if len(q.ids) < 2 {
		return 0, 0, false
	}
	first, second = q.ids[0], q.ids[1]
	q.ids = q.ids[2:]
	return first, second, true
}

// remove deletes id if present and reports whether it was still
// waiting. A false return means the client already left the queue,
// usually because it was paired.
func (q *waitQueue) remove(id uint64) bool {
	for i, queued := range q.ids {
		if queued == id {
			q.ids = append(q.ids[:i], q.ids[i+1:]...)
			return true
		}
	}
	return false
}

func (q *waitQueue) len() int {
	return len(q.ids)
}
