// File: internal/concurrency/event.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Event is a single-word wake/sleep latch shared by every worker of a
// pool. The word packs two things:
//
//   bit 0        — the root-in-flight flag; while set, workers stay in
//                  their steal loops instead of parking
//   bits 1..31   — a notification generation bumped by Kick so external
//                  submissions can wake parked workers without touching
//                  the flag
//
// Waiters sleep only while the whole word equals the value they last
// observed, so a flag flip or a generation bump is never lost between
// the observation and the sleep.

package concurrency

// EventFlag is the root-in-flight bit of the event word.
const EventFlag uint32 = 1

// eventKick is the generation increment used by Kick.
const eventKick uint32 = 2
