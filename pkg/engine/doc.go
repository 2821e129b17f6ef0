package engine

/**
* Engine is a golang library of match simulation primitives for estimating
* football scorelines: form scoring, a logistic expected goals curve,
* a weighted match day performance multiplier and Poisson goal sampling
 */
