/*
Package placement implements assignment of shards to workers with
replication.

Given a snapshot of workers, a list of shards and a replication factor R,
every shard is placed on exactly R distinct workers. There are two
deterministic strategies computing the same shape of result:

Modulo strategy takes a worker at index hash(shard) mod len(workers) and the
R-1 workers following it in the list. It is cheap, but removal or insertion
of a single worker reshuffles almost every shard.

Rendezvous (highest random weight) strategy scores every (shard, worker) pair
independently and places shard on the R workers with the lowest scores. A
membership change moves only the shards whose top-R set contained the changed
worker, that is about shards*R/workers of them.

ReassignmentCost measures how disruptive a change from one assignment to
another is: it counts (worker, shard) placements present in exactly one of
them.

Placement results depend on the hash function. The default one is xxhash
(XXH64 with zero seed); see Placer.Hash to use another one. For more theory
about rendezvous hashing please see:
https://en.wikipedia.org/wiki/Rendezvous_hashing
*/
package placement
