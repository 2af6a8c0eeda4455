package taxi

import "github.com/katalvlaran/taxirelay/taxienv"

// ExecuteAll drains the queued actions of the given taxis against st.
//
// Each round takes one action from every non-empty queue and applies them as
// one joint step, so the vehicles advance in lockstep; a taxi with a longer
// queue keeps driving alone once the others are done. ExecuteAll returns
// when every queue is empty, or with the first step error.
func ExecuteAll(st taxienv.Stepper, taxis ...*Taxi) error {
	for {
		joint := make(map[int]taxienv.Action, len(taxis))
		for _, t := range taxis {
			if act, ok := t.NextAction(); ok {
				joint[t.Index()] = act
			}
		}
		if len(joint) == 0 {
			return nil
		}
		if err := st.Step(joint); err != nil {
			return err
		}
	}
}
