/*
Package seqsim models synchronous digital logic at the latch, flip-flop and
counter level of abstraction.

It reproduces the observable input/output behavior of physical sequential
circuits, including the timing hazards real hardware designers must reason
about: level-sensitive transparency, edge triggering built from master-slave
latch pairs, feedback-driven toggling and asynchronous ripple-carry
propagation.

Every component is a plain value mutated through synchronous method calls;
there are no goroutines, no clocks running in the background and no
propagation delay. A clock edge is simply the transition of the clk argument
between two consecutive Update calls.

*/
package seqsim
